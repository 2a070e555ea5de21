package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// CatalogsClient implements criteo.CatalogsClient. Catalog exports are
// asynchronous: request one, poll its status, then fetch the output.
type CatalogsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewCatalogsClient creates a new catalogs client.
func NewCatalogsClient(httpClient *http.Client, basePath string) *CatalogsClient {
	return &CatalogsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// Request implements criteo.CatalogsClient.Request.
func (c *CatalogsClient) Request(ctx context.Context, accountID string) (*criteo.Envelope[criteo.CatalogStatus], error) {
	path := fmt.Sprintf("%s/accounts/%s/catalogs", c.basePath, accountID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting catalog: %w", err)
	}

	var catalog criteo.Envelope[criteo.CatalogStatus]

	err = json.Unmarshal(resp.Body, &catalog)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog response: %w", err)
	}

	return &catalog, nil
}

// Status implements criteo.CatalogsClient.Status.
func (c *CatalogsClient) Status(ctx context.Context, catalogID string) (*criteo.Envelope[criteo.CatalogStatus], error) {
	path := fmt.Sprintf("%s/catalogs/%s/status", c.basePath, catalogID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting catalog status: %w", err)
	}

	var catalog criteo.Envelope[criteo.CatalogStatus]

	err = json.Unmarshal(resp.Body, &catalog)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog status response: %w", err)
	}

	return &catalog, nil
}

// Output implements criteo.CatalogsClient.Output. The output endpoint
// serves newline-delimited JSON, returned here as text.
func (c *CatalogsClient) Output(ctx context.Context, catalogID string) (string, error) {
	path := fmt.Sprintf("%s/catalogs/%s/output", c.basePath, catalogID)

	output, err := c.httpClient.GetText(ctx, path, nil)
	if err != nil {
		return "", fmt.Errorf("getting catalog output: %w", err)
	}

	return output, nil
}

// Download implements criteo.CatalogsClient.Download.
func (c *CatalogsClient) Download(ctx context.Context, catalogID, filePath string) (string, error) {
	path := fmt.Sprintf("%s/catalogs/%s/output", c.basePath, catalogID)

	confirmation, err := c.httpClient.Download(ctx, path, nil, filePath)
	if err != nil {
		return "", fmt.Errorf("downloading catalog output: %w", err)
	}

	return confirmation, nil
}
