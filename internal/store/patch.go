package store

import "time"

// Patch types carry sparse updates. Fields left nil in the decoded
// payload are absent and keep the persisted value; only non-nil
// fields overwrite. Value fields are deliberately boxed so a zero
// value sent by the caller is distinguishable from an omitted field.

// PersonPatch is a sparse update for a Person.
type PersonPatch struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	// Password, when present, is plaintext and re-hashed by the
	// service before the merge result is persisted.
	Password *string `json:"password"`
	// RoleIDs replaces the full role set when present. An empty
	// non-nil list clears all roles.
	RoleIDs []int64 `json:"roles"`
}

// Apply copies the non-nil fields of the patch onto p. Role links are
// resolved by the service, not here.
func (pp PersonPatch) Apply(p *Person) {
	if pp.Username != nil {
		p.Username = *pp.Username
	}
	if pp.Password != nil {
		p.Password = *pp.Password
	}
}

// RolePatch is a sparse update for a Role.
type RolePatch struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// Apply copies the non-nil fields of the patch onto r.
func (rp RolePatch) Apply(r *Role) {
	if rp.Name != nil {
		r.Name = *rp.Name
	}
}

// RoomPatch is a sparse update for a Room.
type RoomPatch struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// Apply copies the non-nil fields of the patch onto r.
func (rp RoomPatch) Apply(r *Room) {
	if rp.Name != nil {
		r.Name = *rp.Name
	}
}

// MessagePatch is a sparse update for a Message.
type MessagePatch struct {
	ID       int64      `json:"id"`
	Content  *string    `json:"content"`
	Created  *time.Time `json:"created"`
	PersonID *int64     `json:"person_id"`
	RoomID   *int64     `json:"room_id"`
}

// Apply copies the non-nil fields of the patch onto m.
func (mp MessagePatch) Apply(m *Message) {
	if mp.Content != nil {
		m.Content = *mp.Content
	}
	if mp.Created != nil {
		m.Created = *mp.Created
	}
	if mp.PersonID != nil {
		m.PersonID = *mp.PersonID
	}
	if mp.RoomID != nil {
		m.RoomID = *mp.RoomID
	}
}
