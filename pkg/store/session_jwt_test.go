package store

import (
	"strings"
	"testing"
	"time"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func newTestSessionStore(t *testing.T, revoker TokenRevoker) *JWTSessionStore {
	t.Helper()
	s, err := NewJWTSessionStore(testJWTSecret, time.Hour, revoker)
	if err != nil {
		t.Fatalf("new session store: %v", err)
	}
	return s
}

func TestJWTSessionStoreRoundTrip(t *testing.T) {
	s := newTestSessionStore(t, nil)

	token, err := s.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	userID, ok, err := s.GetUserIDByToken(token)
	if err != nil || !ok {
		t.Fatalf("get user by token: ok=%v err=%v", ok, err)
	}
	if userID != "user-1" {
		t.Fatalf("unexpected user id: %q", userID)
	}
}

func TestJWTSessionStoreRejectsTamperedToken(t *testing.T) {
	s := newTestSessionStore(t, nil)

	token, err := s.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, ok, _ := s.GetUserIDByToken(tampered); ok {
		t.Fatalf("tampered token accepted")
	}
}

func TestJWTSessionStoreRejectsForeignSecret(t *testing.T) {
	issuer := newTestSessionStore(t, nil)
	other, err := NewJWTSessionStore("ffffffffffffffffffffffffffffffff", time.Hour, nil)
	if err != nil {
		t.Fatalf("new session store: %v", err)
	}

	token, err := other.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, ok, _ := issuer.GetUserIDByToken(token); ok {
		t.Fatalf("token from foreign secret accepted")
	}
}

func TestJWTSessionStoreDeleteRevokes(t *testing.T) {
	revoker := NewMemoryTokenRevoker()
	s := newTestSessionStore(t, revoker)

	token, err := s.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, ok, err := s.GetUserIDByToken(token); err != nil || !ok {
		t.Fatalf("token invalid before logout: ok=%v err=%v", ok, err)
	}
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, ok, _ := s.GetUserIDByToken(token); ok {
		t.Fatalf("token still valid after logout")
	}
}

func TestJWTSessionStoreRejectsWeakSecret(t *testing.T) {
	if _, err := NewJWTSessionStore("short", time.Hour, nil); err == nil {
		t.Fatalf("expected weak secret to be rejected")
	}
	if _, err := NewJWTSessionStore(testJWTSecret, 0, nil); err == nil {
		t.Fatalf("expected zero ttl to be rejected")
	}
}
