// Package messages implements the domain service for Message records.
package messages

import (
	"context"
	"time"

	"github.com/akravets/talkroom-server/internal/store"
)

// Service provides message management business logic.
type Service struct {
	store store.MessageStore
	now   func() time.Time
}

// New creates a new message service.
func New(st store.MessageStore) *Service {
	return &Service{store: st, now: time.Now}
}

// List returns all messages.
func (s *Service) List(ctx context.Context) ([]*store.Message, error) {
	return s.store.ListMessages(ctx)
}

// Get returns the message with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*store.Message, error) {
	return s.store.GetMessageByID(ctx, id)
}

// Save persists the message: ID 0 creates, nonzero replaces. A zero
// creation timestamp defaults to the current time; a future one is a
// validation failure.
func (s *Service) Save(ctx context.Context, m *store.Message) (*store.Message, error) {
	if m.Created.IsZero() {
		m.Created = s.now()
	}
	if err := m.Validate(s.now()); err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return s.store.CreateMessage(ctx, m)
	}
	if err := s.store.UpdateMessage(ctx, m); err != nil {
		return nil, err
	}
	return s.store.GetMessageByID(ctx, m.ID)
}

// Delete removes the message with the given ID, idempotent by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteMessage(ctx, id)
}

// Patch merges the non-nil fields of the patch onto the persisted
// message and saves the result. An absent target yields
// store.ErrNotFound and performs no write.
func (s *Service) Patch(ctx context.Context, mp store.MessagePatch) (*store.Message, error) {
	current, err := s.store.GetMessageByID(ctx, mp.ID)
	if err != nil {
		return nil, err
	}

	mp.Apply(current)
	if err := current.Validate(s.now()); err != nil {
		return nil, err
	}

	if err := s.store.UpdateMessage(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
