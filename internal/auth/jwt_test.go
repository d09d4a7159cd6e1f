package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "test",
		TTL:    240 * time.Hour,
	}

	token, err := GenerateToken(cfg, "alice")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateToken(cfg, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %q", claims.Subject)
	}

	wantExp := time.Now().Add(cfg.TTL)
	if got := claims.ExpiresAt.Time; got.Before(wantExp.Add(-time.Minute)) || got.After(wantExp.Add(time.Minute)) {
		t.Errorf("expected expiry near %v, got %v", wantExp, got)
	}
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	cfg := &JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "test",
		TTL:    -time.Hour,
	}

	token, err := GenerateToken(cfg, "alice")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateToken_RejectsWrongKey(t *testing.T) {
	issueCfg := &JWTConfig{Secret: []byte("key-one"), Issuer: "test", TTL: time.Hour}
	verifyCfg := &JWTConfig{Secret: []byte("key-two"), Issuer: "test", TTL: time.Hour}

	token, err := GenerateToken(issueCfg, "alice")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateToken(verifyCfg, token); err == nil {
		t.Fatal("expected token signed with a different key to be rejected")
	}
}

func TestValidateToken_RejectsWrongIssuer(t *testing.T) {
	issueCfg := &JWTConfig{Secret: []byte("key"), Issuer: "other", TTL: time.Hour}
	verifyCfg := &JWTConfig{Secret: []byte("key"), Issuer: "talkroom", TTL: time.Hour}

	token, err := GenerateToken(issueCfg, "alice")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateToken(verifyCfg, token); err == nil {
		t.Fatal("expected token with a different issuer to be rejected")
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	cfg := &JWTConfig{Secret: []byte("key"), TTL: time.Hour}

	if _, err := ValidateToken(cfg, "not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
