package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestOAuth2TokenManager_GetToken(t *testing.T) {
	t.Parallel()
	t.Run("exchanges client credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/oauth2/token", request.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "client_credentials", request.PostForm.Get("grant_type"))
			assert.Equal(t, "test-id", request.PostForm.Get("client_id"))
			assert.Equal(t, "test-secret", request.PostForm.Get("client_secret"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"access_token": "issued-token",
				"token_type":   "bearer",
				"expires_in":   900,
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL + "/oauth2/token",
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)

		stored := manager.store.Get()
		require.NotNil(t, stored)
		assert.Equal(t, "bearer", stored.TokenType)
		assert.WithinDuration(t, time.Now().Add(900*time.Second), stored.ExpiresAt, 5*time.Second)
	})

	t.Run("reuses a valid stored token", func(t *testing.T) {
		t.Parallel()

		var exchanges atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			exchanges.Add(1)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"access_token": "issued-token",
				"token_type":   "bearer",
				"expires_in":   900,
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		for i := 0; i < 3; i++ {
			token, err := manager.GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "issued-token", token)
		}

		assert.Equal(t, int32(1), exchanges.Load())
	})

	t.Run("re-exchanges when the stored token is stale", func(t *testing.T) {
		t.Parallel()

		var exchanges atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			exchanges.Add(1)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"access_token": "fresh-token",
				"token_type":   "bearer",
				"expires_in":   900,
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})
		manager.store.Set(&Token{
			AccessToken: "stale-token",
			ExpiresAt:   time.Now().Add(-time.Minute),
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", token)
		assert.Equal(t, int32(1), exchanges.Load())
	})

	t.Run("pre-seeded access token skips the exchange", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     "http://localhost:1/oauth2/token",
			ClientID:     "test-id",
			ClientSecret: "test-secret",
			AccessToken:  "seeded-token",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "seeded-token", token)
	})

	t.Run("missing token URL", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrTokenURLNeeded)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL: "http://localhost:1/oauth2/token",
		})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrNoCredentials)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestOAuth2TokenManager_ExchangeFailures(t *testing.T) {
	t.Parallel()
	t.Run("OAuth error payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "Client authentication failed",
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "bad-id",
			ClientSecret: "bad-secret",
		})

		_, err := manager.GetToken(context.Background())
		require.Error(t, err)

		authErr := &AuthenticationError{}
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, 400, authErr.StatusCode)
		assert.Equal(t, "invalid_client", authErr.ErrorCode)
		assert.Contains(t, authErr.Error(), "Client authentication failed")
	})

	t.Run("non-JSON error body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background())
		require.Error(t, err)

		authErr := &AuthenticationError{}
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, 500, authErr.StatusCode)
		assert.Contains(t, authErr.Description, "upstream unavailable")
	})

	t.Run("store is unchanged on failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background())
		require.Error(t, err)
		assert.Nil(t, manager.store.Get())
	})

	t.Run("response without an access token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"token_type": "bearer"})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrNoAccessToken)
	})
}

func TestOAuth2TokenManager_RefreshToken(t *testing.T) {
	t.Parallel()
	t.Run("discards the cached token and exchanges again", func(t *testing.T) {
		t.Parallel()

		var exchanges atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			count := exchanges.Add(1)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"access_token": map[int32]string{1: "first-token", 2: "second-token"}[count],
				"token_type":   "bearer",
				"expires_in":   900,
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "first-token", token)

		require.NoError(t, manager.RefreshToken(context.Background()))

		token, err = manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "second-token", token)
		assert.Equal(t, int32(2), exchanges.Load())
	})

	t.Run("failed refresh leaves the store empty", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-id",
			ClientSecret: "test-secret",
		})
		manager.store.Set(&Token{AccessToken: "old-token"})

		err := manager.RefreshToken(context.Background())
		require.Error(t, err)
		assert.Nil(t, manager.store.Get())
	})
}

func TestOAuth2TokenManager_SetToken(t *testing.T) {
	t.Parallel()

	manager := NewOAuth2TokenManager(&OAuth2Config{})
	manager.SetToken("manual-token", time.Now().Add(time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "manual-token", token)
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := NewStaticTokenManager("static-token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)

	require.ErrorIs(t, manager.RefreshToken(context.Background()), ErrStaticTokenCannotRefresh)

	manager.SetToken("replacement", time.Time{})

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "replacement", token)
}
