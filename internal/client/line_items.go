package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// LineItemsClient implements criteo.LineItemsClient.
type LineItemsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewLineItemsClient creates a new line items client.
func NewLineItemsClient(httpClient *http.Client, basePath string) *LineItemsClient {
	return &LineItemsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements criteo.LineItemsClient.List.
func (c *LineItemsClient) List(ctx context.Context, campaignID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.LineItem], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/campaigns/%s/line-items", c.basePath, campaignID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}

	var result criteo.ListEnvelope[criteo.LineItem]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing line items list response: %w", err)
	}

	return &result, nil
}

// Create implements criteo.LineItemsClient.Create.
func (c *LineItemsClient) Create(ctx context.Context, campaignID string, request *criteo.LineItemCreate) (*criteo.Envelope[criteo.LineItem], error) {
	path := fmt.Sprintf("%s/campaigns/%s/line-items", c.basePath, campaignID)

	resp, err := c.httpClient.Post(ctx, path, wrapAttributes("NewLineItem", request))
	if err != nil {
		return nil, fmt.Errorf("creating line item: %w", err)
	}

	var lineItem criteo.Envelope[criteo.LineItem]

	err = json.Unmarshal(resp.Body, &lineItem)
	if err != nil {
		return nil, fmt.Errorf("parsing line item response: %w", err)
	}

	return &lineItem, nil
}

// Get implements criteo.LineItemsClient.Get.
func (c *LineItemsClient) Get(ctx context.Context, lineItemID string) (*criteo.Envelope[criteo.LineItem], error) {
	path := fmt.Sprintf("%s/line-items/%s", c.basePath, lineItemID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting line item: %w", err)
	}

	var lineItem criteo.Envelope[criteo.LineItem]

	err = json.Unmarshal(resp.Body, &lineItem)
	if err != nil {
		return nil, fmt.Errorf("parsing line item response: %w", err)
	}

	return &lineItem, nil
}

// Update implements criteo.LineItemsClient.Update.
func (c *LineItemsClient) Update(ctx context.Context, lineItemID string, request *criteo.LineItemUpdate) (*criteo.Envelope[criteo.LineItem], error) {
	path := fmt.Sprintf("%s/line-items/%s", c.basePath, lineItemID)

	resp, err := c.httpClient.Put(ctx, path, wrapAttributes("UpdateLineItem", request))
	if err != nil {
		return nil, fmt.Errorf("updating line item: %w", err)
	}

	var lineItem criteo.Envelope[criteo.LineItem]

	err = json.Unmarshal(resp.Body, &lineItem)
	if err != nil {
		return nil, fmt.Errorf("parsing line item response: %w", err)
	}

	return &lineItem, nil
}
