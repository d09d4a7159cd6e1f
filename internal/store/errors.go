package store

import "errors"

// ErrNotFound is returned when a lookup by identifier yields no row.
// Implementations wrap it with entity context, callers match it with
// errors.Is.
var ErrNotFound = errors.New("not found")
