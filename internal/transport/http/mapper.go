package http

import (
	"time"

	"github.com/akravets/talkroom-server/internal/store"
)

// PersonRequest is the create/update payload for a person. Roles are
// referenced by ID; Password is plaintext and never stored as such.
type PersonRequest struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	RoleIDs  []int64 `json:"roles"`
}

// PersonResponse represents a person in API responses. The password
// hash is write-only and never rendered.
type PersonResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Roles    []RoleResponse `json:"roles"`
}

// RoleRequest is the create/update payload for a role.
type RoleRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoleResponse represents a role in API responses.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoomRequest is the create/update payload for a room.
type RoomRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MessageRequest is the create/update payload for a message. A nil
// created timestamp defaults to the current time at the service.
type MessageRequest struct {
	ID       int64      `json:"id"`
	Content  string     `json:"content"`
	Created  *time.Time `json:"created"`
	PersonID int64      `json:"person_id"`
	RoomID   int64      `json:"room_id"`
}

// MessageResponse represents a message in API responses.
type MessageResponse struct {
	ID       int64     `json:"id"`
	Content  string    `json:"content"`
	Created  time.Time `json:"created"`
	PersonID int64     `json:"person_id"`
	RoomID   int64     `json:"room_id"`
}

func (r PersonRequest) toPerson() *store.Person {
	roles := make([]store.Role, 0, len(r.RoleIDs))
	for _, id := range r.RoleIDs {
		roles = append(roles, store.Role{ID: id})
	}
	return &store.Person{
		ID:       r.ID,
		Username: r.Username,
		Password: r.Password,
		Roles:    roles,
	}
}

func toPersonResponse(p *store.Person) PersonResponse {
	roles := make([]RoleResponse, 0, len(p.Roles))
	for _, r := range p.Roles {
		roles = append(roles, RoleResponse{ID: r.ID, Name: r.Name})
	}
	return PersonResponse{
		ID:       p.ID,
		Username: p.Username,
		Roles:    roles,
	}
}

func toPersonResponses(persons []*store.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	return out
}

func toRoleResponse(r *store.Role) RoleResponse {
	return RoleResponse{ID: r.ID, Name: r.Name}
}

func toRoomResponse(r *store.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name}
}

func toMessageResponse(m *store.Message) MessageResponse {
	return MessageResponse{
		ID:       m.ID,
		Content:  m.Content,
		Created:  m.Created,
		PersonID: m.PersonID,
		RoomID:   m.RoomID,
	}
}

func (r MessageRequest) toMessage() *store.Message {
	m := &store.Message{
		ID:       r.ID,
		Content:  r.Content,
		PersonID: r.PersonID,
		RoomID:   r.RoomID,
	}
	if r.Created != nil {
		m.Created = *r.Created
	}
	return m
}
