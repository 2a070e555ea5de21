package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// newTestClient spins up a test server and a client pointed at it, with a
// static token so no exchange happens.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := New(&criteo.Config{
		Endpoint:    server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	return apiClient, server
}

func writeJSON(t *testing.T, writer http.ResponseWriter, body string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")

	_, err := writer.Write([]byte(body))
	require.NoError(t, err)
}
