package store

import (
	"fmt"
	"strings"
	"time"
)

// FieldViolation describes a single failed field constraint.
type FieldViolation struct {
	Field   string
	Message string
	Value   any
}

// ValidationError aggregates the field violations of one entity.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// violationError returns nil when the list is empty so callers can
// return the result directly.
func violationError(vs []FieldViolation) error {
	if len(vs) == 0 {
		return nil
	}
	return &ValidationError{Violations: vs}
}

// Validate checks person constraints. Password is validated as
// plaintext, so it must run before hashing.
func (p *Person) Validate() error {
	var vs []FieldViolation
	if strings.TrimSpace(p.Username) == "" {
		vs = append(vs, FieldViolation{"username", "must not be empty", p.Username})
	} else if len(p.Username) < 3 {
		vs = append(vs, FieldViolation{"username", "length must be more than 2 characters", p.Username})
	}
	if strings.TrimSpace(p.Password) == "" {
		vs = append(vs, FieldViolation{"password", "must not be empty", ""})
	} else if len(p.Password) < 6 {
		vs = append(vs, FieldViolation{"password", "length must be more than 5 characters", ""})
	}
	return violationError(vs)
}

// Validate checks role constraints.
func (r *Role) Validate() error {
	var vs []FieldViolation
	if strings.TrimSpace(r.Name) == "" {
		vs = append(vs, FieldViolation{"name", "must not be empty", r.Name})
	} else if len(r.Name) < 4 {
		vs = append(vs, FieldViolation{"name", "length must be at least 4 characters", r.Name})
	}
	return violationError(vs)
}

// Validate checks room constraints.
func (r *Room) Validate() error {
	var vs []FieldViolation
	if strings.TrimSpace(r.Name) == "" {
		vs = append(vs, FieldViolation{"name", "must not be empty", r.Name})
	}
	return violationError(vs)
}

// Validate checks message constraints against the given current time.
func (m *Message) Validate(now time.Time) error {
	var vs []FieldViolation
	if strings.TrimSpace(m.Content) == "" {
		vs = append(vs, FieldViolation{"content", "must not be empty", m.Content})
	}
	if m.Created.After(now) {
		vs = append(vs, FieldViolation{"created", "must be past or present", m.Created})
	}
	return violationError(vs)
}
