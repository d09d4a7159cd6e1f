package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akravets/talkroom-server/internal/auth"
)

func TestSignUpAndLogin(t *testing.T) {
	server, _, _ := newTestServer(t)

	// Sign-up is the one anonymous endpoint besides login.
	body := bytes.NewBufferString(`{"username":"alice","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/sign-up", body)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var person PersonResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &person); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if person.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if strings.Contains(resp.Body.String(), "secret123") {
		t.Error("response must not leak the password")
	}

	// Login issues the bearer token in header and body.
	body = bytes.NewBufferString(`{"username":"alice","password":"secret123"}`)
	req = httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")

	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	header := resp.Header().Get("Authorization")
	if !strings.HasPrefix(header, auth.TokenPrefix) {
		t.Errorf("expected Authorization header with Bearer prefix, got %q", header)
	}
	var authResp AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &authResp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if authResp.Token == "" {
		t.Error("expected non-empty token in body")
	}
	if header != auth.TokenPrefix+authResp.Token {
		t.Error("header and body must carry the same token")
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	server, st, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"username":"alice","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/sign-up", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	body = bytes.NewBufferString(`{"username":"alice","password":"otherpass"}`)
	req = httptest.NewRequest(http.MethodPost, "/users/sign-up", body)
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}

	// The rejected person is echoed, not persisted.
	var echoed PersonResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &echoed); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if echoed.Username != "alice" {
		t.Errorf("expected echoed username 'alice', got %q", echoed.Username)
	}

	persons, err := st.ListPersons(context.Background())
	if err != nil {
		t.Fatalf("list persons: %v", err)
	}
	if len(persons) != 1 {
		t.Errorf("expected exactly one persisted record, got %d", len(persons))
	}
}

func TestSignUp_ValidationViolationList(t *testing.T) {
	server, _, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"username":"ab","password":"12345"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/sign-up", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var violations []map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &violations); err != nil {
		t.Fatalf("expected violation list, got %s", resp.Body.String())
	}
	if len(violations) != 2 {
		t.Errorf("expected 2 violations, got %d", len(violations))
	}
	for _, v := range violations {
		for _, msg := range v {
			if !strings.Contains(msg, "Actual value:") {
				t.Errorf("violation message missing actual value: %q", msg)
			}
		}
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server, _, authService := newTestServer(t)
	signUpAndLogin(t, authService)

	body := bytes.NewBufferString(`{"username":"testuser","password":"wrong-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "" {
		t.Error("no token must be issued on failed login")
	}
}

func TestAuthorization(t *testing.T) {
	server, _, authService := newTestServer(t)
	token := signUpAndLogin(t, authService)

	// No header: anonymous requests are rejected on protected routes.
	req := httptest.NewRequest(http.MethodGet, "/users/all", nil)
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without token, got %d", resp.Code)
	}

	// Wrong scheme label: passes through anonymously, still rejected.
	req = httptest.NewRequest(http.MethodGet, "/users/all", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 with wrong scheme, got %d", resp.Code)
	}

	// Garbage token: verification fails, request aborted.
	req = httptest.NewRequest(http.MethodGet, "/users/all", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 with invalid token, got %d", resp.Code)
	}

	// Valid token: identity attached, request served.
	req = httptest.NewRequest(http.MethodGet, "/users/all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("expected status 200 with valid token, got %d: %s", resp.Code, resp.Body.String())
	}
}
