// Package criteoclient provides the main entry point for creating Criteo
// Retail Media API clients.
package criteoclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/joepikowski/criteo-api-go-client/internal/client"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// New creates a new Criteo API client from a config.
func New(ctx context.Context, config *criteo.Config) (criteo.Client, error) {
	if config == nil {
		return nil, criteo.ErrConfigRequired
	}

	if config.Endpoint != "" {
		endpoint := strings.TrimSuffix(config.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.Endpoint = endpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	// Authentication is lazy: the first call through the pipeline runs
	// the token exchange.
	return apiClient, nil
}

// NewWithClientCredentials creates a new client using OAuth2 client
// credentials against the default API endpoint.
func NewWithClientCredentials(ctx context.Context, clientID, clientSecret string) (criteo.Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, criteo.ErrCredentialsRequired
	}

	return New(ctx, &criteo.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWithToken creates a new client with a pre-issued access token. The
// token cannot be refreshed, so a 401 is terminal.
func NewWithToken(ctx context.Context, token string) (criteo.Client, error) {
	return New(ctx, &criteo.Config{
		AccessToken: token,
	})
}
