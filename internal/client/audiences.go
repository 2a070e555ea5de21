package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// AudiencesClient implements criteo.AudiencesClient.
type AudiencesClient struct {
	httpClient *http.Client
	basePath   string
}

// NewAudiencesClient creates a new audiences client.
func NewAudiencesClient(httpClient *http.Client, basePath string) *AudiencesClient {
	return &AudiencesClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements criteo.AudiencesClient.List.
func (c *AudiencesClient) List(ctx context.Context, accountID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Audience], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/accounts/%s/audiences", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing audiences: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Audience]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing audiences list response: %w", err)
	}

	return &result, nil
}

// Create implements criteo.AudiencesClient.Create.
func (c *AudiencesClient) Create(ctx context.Context, accountID string, request *criteo.AudienceCreate) (*criteo.Envelope[criteo.Audience], error) {
	path := fmt.Sprintf("%s/accounts/%s/audiences", c.basePath, accountID)

	resp, err := c.httpClient.Post(ctx, path, wrapAttributes("NewAudience", request))
	if err != nil {
		return nil, fmt.Errorf("creating audience: %w", err)
	}

	var audience criteo.Envelope[criteo.Audience]

	err = json.Unmarshal(resp.Body, &audience)
	if err != nil {
		return nil, fmt.Errorf("parsing audience response: %w", err)
	}

	return &audience, nil
}

// Get implements criteo.AudiencesClient.Get.
func (c *AudiencesClient) Get(ctx context.Context, audienceID string) (*criteo.Envelope[criteo.Audience], error) {
	path := fmt.Sprintf("%s/audiences/%s", c.basePath, audienceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting audience: %w", err)
	}

	var audience criteo.Envelope[criteo.Audience]

	err = json.Unmarshal(resp.Body, &audience)
	if err != nil {
		return nil, fmt.Errorf("parsing audience response: %w", err)
	}

	return &audience, nil
}

// Update implements criteo.AudiencesClient.Update.
func (c *AudiencesClient) Update(ctx context.Context, audienceID string, request *criteo.AudienceUpdate) (*criteo.Envelope[criteo.Audience], error) {
	path := fmt.Sprintf("%s/audiences/%s", c.basePath, audienceID)

	resp, err := c.httpClient.Patch(ctx, path, wrapAttributes("UpdateAudience", request))
	if err != nil {
		return nil, fmt.Errorf("updating audience: %w", err)
	}

	var audience criteo.Envelope[criteo.Audience]

	err = json.Unmarshal(resp.Body, &audience)
	if err != nil {
		return nil, fmt.Errorf("parsing audience response: %w", err)
	}

	return &audience, nil
}
