package http

import (
	"context"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/auth"
	"github.com/akravets/talkroom-server/internal/config"
	"github.com/akravets/talkroom-server/internal/service/messages"
	"github.com/akravets/talkroom-server/internal/service/people"
	"github.com/akravets/talkroom-server/internal/service/roles"
	"github.com/akravets/talkroom-server/internal/service/rooms"
	"github.com/akravets/talkroom-server/internal/store"
	"github.com/akravets/talkroom-server/internal/store/sqlite"
)

// newTestServer builds a server over an in-memory store.
func newTestServer(t *testing.T) (*stdhttp.Server, store.Store, *auth.Service) {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	authService := auth.NewService(st, &auth.JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "test",
		TTL:    240 * time.Hour,
	})

	svcs := Services{
		Auth:     authService,
		People:   people.New(st),
		Roles:    roles.New(st),
		Rooms:    rooms.New(st),
		Messages: messages.New(st),
	}

	cfg := config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}

	disabledLogger := zerolog.New(nil)
	return NewServer(svcs, &cfg, &disabledLogger), st, authService
}

// signUpAndLogin registers a user and returns a valid bearer token.
func signUpAndLogin(t *testing.T, authService *auth.Service) string {
	t.Helper()

	ctx := context.Background()
	if _, err := authService.SignUp(ctx, &store.Person{Username: "testuser", Password: "password123"}); err != nil {
		t.Fatalf("failed to sign up user: %v", err)
	}
	token, err := authService.Login(ctx, "testuser", "password123")
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	return token
}
