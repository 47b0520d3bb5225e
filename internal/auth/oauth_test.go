package auth

import (
	"context"
	"strings"
	"testing"
	"time"
)

func testGate() *Gate {
	return NewGate(Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost/admin/callback",
		AuthURL:      "http://provider.example/auth",
		TokenURL:     "http://provider.example/token",
	}, NewMemorySessionStore(), time.Hour)
}

func TestLoginURLIncludesGeneratedState(t *testing.T) {
	g := testGate()
	url, err := g.LoginURL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url == "" {
		t.Fatal("expected a non-empty login URL")
	}
	if !strings.Contains(url, "state=") {
		t.Fatalf("expected the login URL to carry a state parameter, got %q", url)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	g := testGate()
	_, err := g.Callback(context.Background(), "never-issued", "some-code")
	if err == nil {
		t.Fatal("expected an error for an unrecognized state token")
	}
}

func TestCallbackStateIsSingleUse(t *testing.T) {
	store := NewMemorySessionStore()
	store.PutState("state-123", time.Now().Add(time.Minute))

	if !store.TakeState("state-123") {
		t.Fatal("expected first TakeState to succeed")
	}
	if store.TakeState("state-123") {
		t.Fatal("expected second TakeState of the same state to fail")
	}
}

func TestSessionExpires(t *testing.T) {
	store := NewMemorySessionStore()
	store.PutSession("tok", time.Now().Add(-time.Second))

	if store.ValidSession("tok") {
		t.Fatal("expected an already-expired session to be invalid")
	}
}

func TestIsAuthorizedRejectsEmptyToken(t *testing.T) {
	g := testGate()
	if g.IsAuthorized("") {
		t.Fatal("expected an empty session token to be unauthorized")
	}
}
