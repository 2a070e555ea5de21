package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// CampaignsClient implements criteo.CampaignsClient.
type CampaignsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(httpClient *http.Client, basePath string) *CampaignsClient {
	return &CampaignsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements criteo.CampaignsClient.List.
func (c *CampaignsClient) List(ctx context.Context, accountID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Campaign], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/accounts/%s/campaigns", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Campaign]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing campaigns list response: %w", err)
	}

	return &result, nil
}

// Create implements criteo.CampaignsClient.Create.
func (c *CampaignsClient) Create(ctx context.Context, accountID string, request *criteo.CampaignCreate) (*criteo.Envelope[criteo.Campaign], error) {
	path := fmt.Sprintf("%s/accounts/%s/campaigns", c.basePath, accountID)

	resp, err := c.httpClient.Post(ctx, path, wrapAttributes("NewCampaign", request))
	if err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	var campaign criteo.Envelope[criteo.Campaign]

	err = json.Unmarshal(resp.Body, &campaign)
	if err != nil {
		return nil, fmt.Errorf("parsing campaign response: %w", err)
	}

	return &campaign, nil
}

// Get implements criteo.CampaignsClient.Get.
func (c *CampaignsClient) Get(ctx context.Context, campaignID string) (*criteo.Envelope[criteo.Campaign], error) {
	path := fmt.Sprintf("%s/campaigns/%s", c.basePath, campaignID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}

	var campaign criteo.Envelope[criteo.Campaign]

	err = json.Unmarshal(resp.Body, &campaign)
	if err != nil {
		return nil, fmt.Errorf("parsing campaign response: %w", err)
	}

	return &campaign, nil
}

// Update implements criteo.CampaignsClient.Update.
func (c *CampaignsClient) Update(ctx context.Context, campaignID string, request *criteo.CampaignUpdate) (*criteo.Envelope[criteo.Campaign], error) {
	path := fmt.Sprintf("%s/campaigns/%s", c.basePath, campaignID)

	resp, err := c.httpClient.Put(ctx, path, wrapAttributes("UpdateCampaign", request))
	if err != nil {
		return nil, fmt.Errorf("updating campaign: %w", err)
	}

	var campaign criteo.Envelope[criteo.Campaign]

	err = json.Unmarshal(resp.Body, &campaign)
	if err != nil {
		return nil, fmt.Errorf("parsing campaign response: %w", err)
	}

	return &campaign, nil
}
