// Package roles implements the domain service for Role records.
package roles

import (
	"context"

	"github.com/akravets/talkroom-server/internal/store"
)

// Service provides role management business logic.
type Service struct {
	store store.RoleStore
}

// New creates a new role service.
func New(st store.RoleStore) *Service {
	return &Service{store: st}
}

// List returns all roles.
func (s *Service) List(ctx context.Context) ([]*store.Role, error) {
	return s.store.ListRoles(ctx)
}

// Get returns the role with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*store.Role, error) {
	return s.store.GetRoleByID(ctx, id)
}

// Save persists the role: ID 0 creates, nonzero replaces.
func (s *Service) Save(ctx context.Context, r *store.Role) (*store.Role, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.ID == 0 {
		return s.store.CreateRole(ctx, r)
	}
	if err := s.store.UpdateRole(ctx, r); err != nil {
		return nil, err
	}
	return s.store.GetRoleByID(ctx, r.ID)
}

// Delete removes the role with the given ID, idempotent by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteRole(ctx, id)
}

// Patch merges the non-nil fields of the patch onto the persisted
// role and saves the result. An absent target yields store.ErrNotFound
// and performs no write.
func (s *Service) Patch(ctx context.Context, rp store.RolePatch) (*store.Role, error) {
	current, err := s.store.GetRoleByID(ctx, rp.ID)
	if err != nil {
		return nil, err
	}

	rp.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateRole(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
