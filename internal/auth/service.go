package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akravets/talkroom-server/internal/store"
)

var (
	// ErrInvalidCredentials is returned when username/password don't match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when signing up with a taken username.
	ErrUserExists = errors.New("user already exists")
)

// Service provides authentication operations.
type Service struct {
	store     store.PersonStore
	jwtConfig *JWTConfig
}

// NewService creates a new authentication service.
func NewService(personStore store.PersonStore, jwtConfig *JWTConfig) *Service {
	return &Service{
		store:     personStore,
		jwtConfig: jwtConfig,
	}
}

// SignUp validates the person, rejects taken usernames before any
// write, hashes the password and persists the new record.
func (s *Service) SignUp(ctx context.Context, p *store.Person) (*store.Person, error) {
	p.Username = strings.TrimSpace(p.Username)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// Uniqueness is checked here at the service boundary, not by the
	// store schema alone, so the duplicate is rejected before persistence.
	if existing, err := s.store.GetPersonByUsername(ctx, p.Username); err == nil && existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := HashPassword(p.Password)
	if err != nil {
		return nil, err
	}
	p.Password = hashed

	created, err := s.store.CreatePerson(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}
	return created, nil
}

// Login validates credentials and returns a signed bearer token with
// the username as subject.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	person, err := s.store.GetPersonByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := ComparePassword(person.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(s.jwtConfig, person.Username)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// ValidateToken validates a JWT token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return ValidateToken(s.jwtConfig, tokenString)
}
