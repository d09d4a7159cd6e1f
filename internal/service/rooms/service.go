// Package rooms implements the domain service for Room records.
package rooms

import (
	"context"

	"github.com/akravets/talkroom-server/internal/store"
)

// Service provides room management business logic.
type Service struct {
	store store.RoomStore
}

// New creates a new room service.
func New(st store.RoomStore) *Service {
	return &Service{store: st}
}

// List returns all rooms.
func (s *Service) List(ctx context.Context) ([]*store.Room, error) {
	return s.store.ListRooms(ctx)
}

// Get returns the room with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*store.Room, error) {
	return s.store.GetRoomByID(ctx, id)
}

// Save persists the room: ID 0 creates, nonzero replaces.
func (s *Service) Save(ctx context.Context, r *store.Room) (*store.Room, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.ID == 0 {
		return s.store.CreateRoom(ctx, r)
	}
	if err := s.store.UpdateRoom(ctx, r); err != nil {
		return nil, err
	}
	return s.store.GetRoomByID(ctx, r.ID)
}

// Delete removes the room with the given ID, idempotent by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteRoom(ctx, id)
}

// Patch merges the non-nil fields of the patch onto the persisted
// room and saves the result. An absent target yields store.ErrNotFound
// and performs no write.
func (s *Service) Patch(ctx context.Context, rp store.RoomPatch) (*store.Room, error) {
	current, err := s.store.GetRoomByID(ctx, rp.ID)
	if err != nil {
		return nil, err
	}

	rp.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateRoom(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
