package criteoclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, criteo.ErrConfigRequired)
	})

	t.Run("construction does not authenticate", func(t *testing.T) {
		t.Parallel()

		exchanges := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			exchanges++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := New(context.Background(), &criteo.Config{
			Endpoint:     server.URL,
			ClientID:     "id",
			ClientSecret: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, exchanges)
	})

	t.Run("trailing slash on endpoint is normalized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/preview/retail-media/accounts", request.URL.Path)
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		apiClient, err := New(context.Background(), &criteo.Config{
			Endpoint:    server.URL + "/",
			AccessToken: "token",
		})
		require.NoError(t, err)

		result, err := apiClient.Accounts().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, result.Data)
	})
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()
	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := NewWithClientCredentials(context.Background(), "", "secret")
		require.ErrorIs(t, err, criteo.ErrCredentialsRequired)

		_, err = NewWithClientCredentials(context.Background(), "id", "")
		require.ErrorIs(t, err, criteo.ErrCredentialsRequired)
	})

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		apiClient, err := NewWithClientCredentials(context.Background(), "id", "secret")
		require.NoError(t, err)
		assert.NotNil(t, apiClient)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	apiClient, err := NewWithToken(context.Background(), "pre-issued")
	require.NoError(t, err)

	token, err := apiClient.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pre-issued", token)
}
