package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akravets/talkroom-server/internal/store"
)

func TestDeleteMessage_AbsentIDStillSucceeds(t *testing.T) {
	server, _, authService := newTestServer(t)
	token := signUpAndLogin(t, authService)

	// Nothing with id 1 exists, the delete is idempotent by id.
	req := httptest.NewRequest(http.MethodDelete, "/message/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestMessageCreateAndPatch(t *testing.T) {
	server, st, authService := newTestServer(t)
	token := signUpAndLogin(t, authService)
	ctx := context.Background()

	person, err := st.CreatePerson(ctx, &store.Person{Username: "poster", Password: "hash"})
	if err != nil {
		t.Fatalf("create person: %v", err)
	}
	room, err := st.CreateRoom(ctx, &store.Room{Name: "general"})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	payload := fmt.Sprintf(`{"content":"hello","person_id":%d,"room_id":%d}`, person.ID, room.ID)
	req := httptest.NewRequest(http.MethodPost, "/message/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var msg MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if msg.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if msg.Created.IsZero() {
		t.Error("expected created defaulted to now")
	}

	// Patch only the content, references stay.
	patch := fmt.Sprintf(`{"id":%d,"content":"edited"}`, msg.ID)
	req = httptest.NewRequest(http.MethodPatch, "/message/", bytes.NewBufferString(patch))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var patched MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &patched); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if patched.Content != "edited" {
		t.Errorf("expected content 'edited', got %q", patched.Content)
	}
	if patched.PersonID != person.ID || patched.RoomID != room.ID {
		t.Errorf("references changed by content-only patch: %+v", patched)
	}
	if !patched.Created.Equal(msg.Created) {
		t.Errorf("created changed by content-only patch: %v vs %v", patched.Created, msg.Created)
	}
}

func TestCreateMessage_FutureCreatedIsViolation(t *testing.T) {
	server, _, authService := newTestServer(t)
	token := signUpAndLogin(t, authService)

	payload := `{"content":"hi","created":"2099-01-01T00:00:00Z","person_id":1,"room_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/message/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
