package auth

import (
	"context"
	"sync"
	"time"
)

// TokenExpirationBuffer is subtracted from a token's lifetime so that a
// token about to expire is treated as already expired instead of being sent
// on a request that would fail mid-flight.
const TokenExpirationBuffer = 30 * time.Second

// Token represents the payload returned by the Criteo OAuth token endpoint.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresIn   int       `json:"expires_in,omitempty"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token can still be sent on a request. A token
// without an expiry is assumed valid; expiry is checked with the buffer
// applied.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore is a concurrency-safe single-slot cell holding the current
// token. It is shared by all in-flight requests; concurrent refreshes are
// last-writer-wins (see OAuth2TokenManager).
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil if none has been stored yet.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set stores a token, replacing any previous one.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = nil
}

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, authenticating if necessary.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken discards any cached token and fetches a fresh one.
	RefreshToken(ctx context.Context) error

	// SetToken manually sets the access token.
	SetToken(token string, expiresAt time.Time)
}
