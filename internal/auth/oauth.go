package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joepikowski/criteo-api-go-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials  = errors.New("no valid credentials available")
	ErrNoAccessToken  = errors.New("token response did not contain an access token")
	ErrTokenURLNeeded = errors.New("token URL is required")
)

// AuthenticationError is returned when the token exchange itself fails.
// The token store is left unchanged when this error is returned.
type AuthenticationError struct {
	StatusCode  int
	ErrorCode   string
	Description string
}

func (e *AuthenticationError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("authentication failed: %s: %s (status: %d)", e.ErrorCode, e.Description, e.StatusCode)
	}

	return fmt.Sprintf("authentication failed with status %d: %s", e.StatusCode, e.Description)
}

// OAuth2Config configures the client-credentials exchange against the
// Criteo OAuth token endpoint.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string

	// AccessToken pre-seeds the store, for callers that already hold a
	// token issued elsewhere.
	AccessToken string

	// HTTPClient overrides the client used for the token exchange. The
	// exchange deliberately bypasses the request pipeline so that
	// authenticating can never recurse into authentication.
	HTTPClient *http.Client
}

// OAuth2TokenManager exchanges client credentials for bearer tokens and
// caches the result in a TokenStore.
//
// Two requests that both observe an expired token will both authenticate;
// the second write wins and both tokens are valid on the Criteo side. This
// race is accepted rather than serialized behind a lock.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
}

// NewOAuth2TokenManager creates a token manager for the given config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   "bearer",
		})
	}

	return manager
}

// GetToken returns the stored token when it is still valid, otherwise runs
// the client-credentials exchange and stores the result.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// RefreshToken discards the cached token and fetches a fresh one.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.store.Clear()

	_, err := m.requestToken(ctx)

	return err
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// requestToken performs the client-credentials exchange. On failure the
// store is left unchanged.
func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.TokenURL == "" {
		return nil, ErrTokenURLNeeded
	}

	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, ErrNoCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAuthenticationError(resp.StatusCode, body)
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, ErrNoAccessToken
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	m.store.Set(&token)

	return &token, nil
}

// parseAuthenticationError extracts the OAuth error payload when present.
func parseAuthenticationError(statusCode int, body []byte) *AuthenticationError {
	var payload struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}

	authErr := &AuthenticationError{StatusCode: statusCode}

	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		authErr.ErrorCode = payload.Error
		authErr.Description = payload.Description
	} else {
		authErr.Description = string(body)
	}

	return authErr
}

// StaticTokenManager provides a fixed token that cannot be refreshed.
type StaticTokenManager struct {
	token string
}

// ErrStaticTokenCannotRefresh is returned when a refresh is forced on a
// static token, which happens when the API rejects it with a 401.
var ErrStaticTokenCannotRefresh = errors.New("static token rejected by API and cannot be refreshed")

// NewStaticTokenManager creates a token manager around a pre-issued token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}

// RefreshToken always fails for static tokens.
func (m *StaticTokenManager) RefreshToken(_ context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken manually replaces the static token.
func (m *StaticTokenManager) SetToken(token string, _ time.Time) {
	m.token = token
}
