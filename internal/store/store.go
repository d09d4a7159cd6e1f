package store

import (
	"context"
	"time"
)

// Person represents a registered chat user.
type Person struct {
	ID       int64
	Username string
	Password string // bcrypt hash at rest
	Roles    []Role
}

// Role represents an access role that can be attached to a person.
type Role struct {
	ID   int64
	Name string
}

// Room represents a chat room.
type Room struct {
	ID   int64
	Name string
}

// Message represents a persisted chat message.
type Message struct {
	ID       int64
	Content  string
	Created  time.Time
	PersonID int64
	RoomID   int64
}

// PersonStore handles person persistence.
type PersonStore interface {
	// CreatePerson inserts a new person and their role links.
	// The store assigns the ID.
	CreatePerson(ctx context.Context, p *Person) (*Person, error)

	// GetPersonByID retrieves a person with roles attached.
	GetPersonByID(ctx context.Context, id int64) (*Person, error)

	// GetPersonByUsername retrieves a person by unique username.
	GetPersonByUsername(ctx context.Context, username string) (*Person, error)

	// ListPersons lists all persons with roles attached.
	ListPersons(ctx context.Context) ([]*Person, error)

	// UpdatePerson replaces the person row and role links.
	// Returns ErrNotFound when no row with that ID exists.
	UpdatePerson(ctx context.Context, p *Person) error

	// DeletePerson removes a person by ID. Deleting an absent ID is
	// not an error.
	DeletePerson(ctx context.Context, id int64) error
}

// RoleStore handles role persistence.
type RoleStore interface {
	CreateRole(ctx context.Context, r *Role) (*Role, error)
	GetRoleByID(ctx context.Context, id int64) (*Role, error)
	ListRoles(ctx context.Context) ([]*Role, error)
	UpdateRole(ctx context.Context, r *Role) error
	DeleteRole(ctx context.Context, id int64) error
}

// RoomStore handles room persistence.
type RoomStore interface {
	CreateRoom(ctx context.Context, r *Room) (*Room, error)
	GetRoomByID(ctx context.Context, id int64) (*Room, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	UpdateRoom(ctx context.Context, r *Room) error
	DeleteRoom(ctx context.Context, id int64) error
}

// MessageStore handles message persistence.
type MessageStore interface {
	CreateMessage(ctx context.Context, m *Message) (*Message, error)
	GetMessageByID(ctx context.Context, id int64) (*Message, error)
	ListMessages(ctx context.Context) ([]*Message, error)
	UpdateMessage(ctx context.Context, m *Message) error
	DeleteMessage(ctx context.Context, id int64) error
}

// Store aggregates all storage interfaces.
type Store interface {
	PersonStore
	RoleStore
	RoomStore
	MessageStore

	// Close closes the underlying database connection.
	Close() error
}
