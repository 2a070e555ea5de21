package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/joepikowski/criteo-api-go-client/internal/auth"
	"github.com/joepikowski/criteo-api-go-client/internal/constants"
	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// Client implements the criteo.Client interface.
// Static errors for err113 compliance.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	basePath     string
	logger       criteo.Logger

	// Resource clients
	accounts  criteo.AccountsClient
	campaigns criteo.CampaignsClient
	lineItems criteo.LineItemsClient
	balances  criteo.BalancesClient
	audiences criteo.AudiencesClient
	catalogs  criteo.CatalogsClient
	reports   criteo.ReportsClient
	creatives criteo.CreativesClient
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *criteo.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     getTokenURL(config),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the default endpoint.
func getTokenURL(config *criteo.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return config.Endpoint + constants.DefaultTokenPath
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *criteo.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Criteo API client.
func New(config *criteo.Config) (*Client, error) {
	if config == nil {
		return nil, criteo.ErrConfigRequired
	}

	if config.Endpoint == "" {
		config.Endpoint = constants.DefaultAPIEndpoint
	}

	return NewWithTokenManager(config, createTokenManager(config))
}

// NewWithTokenManager creates a new Criteo API client with a custom token
// manager.
func NewWithTokenManager(config *criteo.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, criteo.ErrConfigRequired
	}

	if config.Endpoint == "" {
		config.Endpoint = constants.DefaultAPIEndpoint
	}

	version := config.Version
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		basePath:     "/" + version + "/retail-media",
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c.httpClient, c.basePath)
	c.campaigns = NewCampaignsClient(c.httpClient, c.basePath)
	c.lineItems = NewLineItemsClient(c.httpClient, c.basePath)
	c.balances = NewBalancesClient(c.httpClient, c.basePath)
	c.audiences = NewAudiencesClient(c.httpClient, c.basePath)
	c.catalogs = NewCatalogsClient(c.httpClient, c.basePath)
	c.reports = NewReportsClient(c.httpClient, c.basePath)
	c.creatives = NewCreativesClient(c.httpClient, c.basePath)
}

// Accounts implements criteo.Client.Accounts.
func (c *Client) Accounts() criteo.AccountsClient {
	return c.accounts
}

// Campaigns implements criteo.Client.Campaigns.
func (c *Client) Campaigns() criteo.CampaignsClient {
	return c.campaigns
}

// LineItems implements criteo.Client.LineItems.
func (c *Client) LineItems() criteo.LineItemsClient {
	return c.lineItems
}

// Balances implements criteo.Client.Balances.
func (c *Client) Balances() criteo.BalancesClient {
	return c.balances
}

// Audiences implements criteo.Client.Audiences.
func (c *Client) Audiences() criteo.AudiencesClient {
	return c.audiences
}

// Catalogs implements criteo.Client.Catalogs.
func (c *Client) Catalogs() criteo.CatalogsClient {
	return c.catalogs
}

// Reports implements criteo.Client.Reports.
func (c *Client) Reports() criteo.ReportsClient {
	return c.reports
}

// Creatives implements criteo.Client.Creatives.
func (c *Client) Creatives() criteo.CreativesClient {
	return c.creatives
}

// GetJSON implements criteo.RawClient.GetJSON. The path is used as given,
// without the retail media prefix, so any API surface is reachable.
func (c *Client) GetJSON(ctx context.Context, path string, params *criteo.QueryParams) (interface{}, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	result, err := c.httpClient.GetJSON(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", path, err)
	}

	return result, nil
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// loggerAdapter adapts criteo.Logger to http.Logger.
type loggerAdapter struct {
	logger criteo.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

// payload wraps create/update attributes in the envelope the API expects on
// writes.
type payload struct {
	Data payloadData `json:"data"`
}

type payloadData struct {
	Type       string      `json:"type,omitempty"`
	Attributes interface{} `json:"attributes"`
}

func wrapAttributes(resourceType string, attributes interface{}) payload {
	return payload{
		Data: payloadData{
			Type:       resourceType,
			Attributes: attributes,
		},
	}
}
