// Package people implements the domain service for Person records:
// listing, lookup, full-replacement save, idempotent delete and the
// typed partial-update merge.
package people

import (
	"context"
	"fmt"

	"github.com/akravets/talkroom-server/internal/auth"
	"github.com/akravets/talkroom-server/internal/store"
)

// Service provides person management business logic.
type Service struct {
	store store.Store
}

// New creates a new person service.
func New(st store.Store) *Service {
	return &Service{store: st}
}

// List returns all persons.
func (s *Service) List(ctx context.Context) ([]*store.Person, error) {
	return s.store.ListPersons(ctx)
}

// Get returns the person with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*store.Person, error) {
	return s.store.GetPersonByID(ctx, id)
}

// GetByUsername returns the person with the given username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*store.Person, error) {
	return s.store.GetPersonByUsername(ctx, username)
}

// Save persists the person: ID 0 creates, nonzero replaces the
// existing record. Password is plaintext on input and hashed before
// the write.
func (s *Service) Save(ctx context.Context, p *store.Person) (*store.Person, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}
	p.Password = hashed

	if p.ID == 0 {
		return s.store.CreatePerson(ctx, p)
	}
	if err := s.store.UpdatePerson(ctx, p); err != nil {
		return nil, err
	}
	return s.store.GetPersonByID(ctx, p.ID)
}

// Delete removes the person with the given ID. Deleting an absent ID
// succeeds, the contract is idempotent-by-id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.DeletePerson(ctx, id)
}

// Patch merges the non-nil fields of the patch onto the persisted
// person and saves the result. An absent target yields
// store.ErrNotFound and performs no write. A supplied password is
// plaintext and re-hashed before persisting; a supplied role ID list
// replaces the whole role set.
func (s *Service) Patch(ctx context.Context, pp store.PersonPatch) (*store.Person, error) {
	current, err := s.store.GetPersonByID(ctx, pp.ID)
	if err != nil {
		return nil, err
	}

	pp.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}
	if pp.Password != nil {
		hashed, err := auth.HashPassword(*pp.Password)
		if err != nil {
			return nil, err
		}
		current.Password = hashed
	}
	if pp.RoleIDs != nil {
		roles := make([]store.Role, 0, len(pp.RoleIDs))
		for _, roleID := range pp.RoleIDs {
			role, err := s.store.GetRoleByID(ctx, roleID)
			if err != nil {
				return nil, fmt.Errorf("resolve role: %w", err)
			}
			roles = append(roles, *role)
		}
		current.Roles = roles
	}

	if err := s.store.UpdatePerson(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
