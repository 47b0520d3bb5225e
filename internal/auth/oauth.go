// Package auth gates the admin console behind an OAuth2 login: generate a
// provider redirect, exchange the returned code for a token, and mint an
// opaque admin session token for subsequent requests.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Config holds the OAuth2 provider settings for the admin console login.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string
}

// SessionStore persists the short-lived state token used during the OAuth2
// handshake, and the resulting session token afterward. An in-memory
// implementation is provided by NewMemorySessionStore; a real deployment
// would back this with the cache package instead.
type SessionStore interface {
	PutState(state string, expiresAt time.Time)
	TakeState(state string) bool // true if present and not expired; consumes it
	PutSession(token string, expiresAt time.Time)
	ValidSession(token string) bool
}

// Gate issues OAuth2 login URLs, exchanges authorization codes for tokens,
// and validates admin session tokens on subsequent requests.
type Gate struct {
	oauthConfig *oauth2.Config
	sessions    SessionStore
	sessionTTL  time.Duration
}

// NewGate builds a Gate from Config. sessions is typically a
// NewMemorySessionStore() for a single-instance deployment.
func NewGate(cfg Config, sessions SessionStore, sessionTTL time.Duration) *Gate {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &Gate{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
			Scopes: cfg.Scopes,
		},
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// LoginURL generates a fresh CSRF state token, stores it, and returns the
// URL the admin console should redirect the browser to.
func (g *Gate) LoginURL() (string, error) {
	state, err := randomToken()
	if err != nil {
		return "", fmt.Errorf("auth: failed to generate state: %w", err)
	}
	g.sessions.PutState(state, time.Now().Add(10*time.Minute))
	return g.oauthConfig.AuthCodeURL(state), nil
}

// Callback completes the handshake: verifies state, exchanges code for a
// provider token, and mints an opaque admin session token the caller
// should set as a cookie.
func (g *Gate) Callback(ctx context.Context, state, code string) (sessionToken string, err error) {
	if !g.sessions.TakeState(state) {
		return "", fmt.Errorf("auth: state token invalid, expired, or already used")
	}

	if _, err := g.oauthConfig.Exchange(ctx, code); err != nil {
		return "", fmt.Errorf("auth: failed to exchange code: %w", err)
	}

	sessionToken, err = randomToken()
	if err != nil {
		return "", fmt.Errorf("auth: failed to mint session token: %w", err)
	}
	g.sessions.PutSession(sessionToken, time.Now().Add(g.sessionTTL))
	return sessionToken, nil
}

// IsAuthorized reports whether a session token is currently valid.
func (g *Gate) IsAuthorized(sessionToken string) bool {
	if sessionToken == "" {
		return false
	}
	return g.sessions.ValidSession(sessionToken)
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// MemorySessionStore is a process-local SessionStore, sufficient for the
// single admin-instance deployment this console targets.
type MemorySessionStore struct {
	mu       sync.Mutex
	states   map[string]time.Time
	sessions map[string]time.Time
}

// NewMemorySessionStore builds an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		states:   make(map[string]time.Time),
		sessions: make(map[string]time.Time),
	}
}

func (m *MemorySessionStore) PutState(state string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state] = expiresAt
}

func (m *MemorySessionStore) TakeState(state string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiresAt, ok := m.states[state]
	delete(m.states, state)
	return ok && time.Now().Before(expiresAt)
}

func (m *MemorySessionStore) PutSession(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = expiresAt
}

func (m *MemorySessionStore) ValidSession(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiresAt, ok := m.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(m.sessions, token)
		return false
	}
	return true
}
