package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// BalancesClient implements criteo.BalancesClient.
type BalancesClient struct {
	httpClient *http.Client
	basePath   string
}

// NewBalancesClient creates a new balances client.
func NewBalancesClient(httpClient *http.Client, basePath string) *BalancesClient {
	return &BalancesClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements criteo.BalancesClient.List.
func (c *BalancesClient) List(ctx context.Context, accountID string, params *criteo.QueryParams) (*criteo.ListEnvelope[criteo.Balance], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/accounts/%s/balances", c.basePath, accountID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing balances: %w", err)
	}

	var result criteo.ListEnvelope[criteo.Balance]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing balances list response: %w", err)
	}

	return &result, nil
}

// Get implements criteo.BalancesClient.Get.
func (c *BalancesClient) Get(ctx context.Context, accountID, balanceID string) (*criteo.Envelope[criteo.Balance], error) {
	path := fmt.Sprintf("%s/accounts/%s/balances/%s", c.basePath, accountID, balanceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}

	var balance criteo.Envelope[criteo.Balance]

	err = json.Unmarshal(resp.Body, &balance)
	if err != nil {
		return nil, fmt.Errorf("parsing balance response: %w", err)
	}

	return &balance, nil
}

// AddFunds implements criteo.BalancesClient.AddFunds.
func (c *BalancesClient) AddFunds(ctx context.Context, accountID, balanceID string, request *criteo.BalanceFunds) (*criteo.Envelope[criteo.Balance], error) {
	path := fmt.Sprintf("%s/accounts/%s/balances/%s/add-funds", c.basePath, accountID, balanceID)

	resp, err := c.httpClient.Post(ctx, path, wrapAttributes("AddFundsToBalance", request))
	if err != nil {
		return nil, fmt.Errorf("adding funds to balance: %w", err)
	}

	var balance criteo.Envelope[criteo.Balance]

	err = json.Unmarshal(resp.Body, &balance)
	if err != nil {
		return nil, fmt.Errorf("parsing balance response: %w", err)
	}

	return &balance, nil
}
