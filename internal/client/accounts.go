package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// AccountsClient implements criteo.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client, basePath string) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements criteo.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Account], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.basePath+"/accounts", query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Account]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing accounts list response: %w", err)
	}

	return &result, nil
}

// Get implements criteo.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*criteo.Envelope[criteo.Account], error) {
	path := fmt.Sprintf("%s/accounts/%s", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account criteo.Envelope[criteo.Account]

	err = json.Unmarshal(resp.Body, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}

// ListBrands implements criteo.AccountsClient.ListBrands.
func (c *AccountsClient) ListBrands(ctx context.Context, accountID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Brand], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/accounts/%s/brands", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Brand]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing brands list response: %w", err)
	}

	return &result, nil
}

// ListRetailers implements criteo.AccountsClient.ListRetailers.
func (c *AccountsClient) ListRetailers(ctx context.Context, accountID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Retailer], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/accounts/%s/retailers", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing retailers: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Retailer]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing retailers list response: %w", err)
	}

	return &result, nil
}
