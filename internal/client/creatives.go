package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// CreativesClient implements criteo.CreativesClient.
type CreativesClient struct {
	httpClient *http.Client
	basePath   string
}

// NewCreativesClient creates a new creatives client.
func NewCreativesClient(httpClient *http.Client, basePath string) *CreativesClient {
	return &CreativesClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements criteo.CreativesClient.List.
func (c *CreativesClient) List(ctx context.Context, accountID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Creative], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/accounts/%s/creatives", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing creatives: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Creative]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing creatives list response: %w", err)
	}

	return &result, nil
}

// Get implements criteo.CreativesClient.Get.
func (c *CreativesClient) Get(ctx context.Context, creativeID string) (*criteo.Envelope[criteo.Creative], error) {
	path := fmt.Sprintf("%s/creatives/%s", c.basePath, creativeID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting creative: %w", err)
	}

	var creative criteo.Envelope[criteo.Creative]

	err = json.Unmarshal(resp.Body, &creative)
	if err != nil {
		return nil, fmt.Errorf("parsing creative response: %w", err)
	}

	return &creative, nil
}
