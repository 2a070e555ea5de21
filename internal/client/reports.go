package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joepikowski/criteo-api-go-client/internal/constants"
	"github.com/joepikowski/criteo-api-go-client/internal/http"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// ReportsClient implements criteo.ReportsClient. Analytics reports are
// asynchronous: request one, poll its status until it succeeds or fails,
// then fetch the output.
type ReportsClient struct {
	httpClient *http.Client
	basePath   string

	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewReportsClient creates a new reports client.
func NewReportsClient(httpClient *http.Client, basePath string) *ReportsClient {
	return &ReportsClient{
		httpClient:   httpClient,
		basePath:     basePath,
		pollInterval: constants.DefaultReportPollInterval,
		pollTimeout:  constants.DefaultReportPollTimeout,
	}
}

// RequestCampaignReport implements criteo.ReportsClient.RequestCampaignReport.
func (c *ReportsClient) RequestCampaignReport(ctx context.Context, request *criteo.ReportRequest) (*criteo.Envelope[criteo.ReportStatus], error) {
	return c.requestReport(ctx, c.basePath+"/reports/campaigns", request)
}

// RequestLineItemReport implements criteo.ReportsClient.RequestLineItemReport.
func (c *ReportsClient) RequestLineItemReport(ctx context.Context, request *criteo.ReportRequest) (*criteo.Envelope[criteo.ReportStatus], error) {
	return c.requestReport(ctx, c.basePath+"/reports/line-items", request)
}

func (c *ReportsClient) requestReport(ctx context.Context, path string, request *criteo.ReportRequest) (*criteo.Envelope[criteo.ReportStatus], error) {
	resp, err := c.httpClient.Post(ctx, path, wrapAttributes("RetailMediaReportRequest", request))
	if err != nil {
		return nil, fmt.Errorf("requesting report: %w", err)
	}

	var report criteo.Envelope[criteo.ReportStatus]

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing report response: %w", err)
	}

	return &report, nil
}

// Status implements criteo.ReportsClient.Status.
func (c *ReportsClient) Status(ctx context.Context, reportID string) (*criteo.Envelope[criteo.ReportStatus], error) {
	path := fmt.Sprintf("%s/reports/%s/status", c.basePath, reportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting report status: %w", err)
	}

	var report criteo.Envelope[criteo.ReportStatus]

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing report status response: %w", err)
	}

	return &report, nil
}

// Output implements criteo.ReportsClient.Output. The output endpoint
// serves CSV, returned here as text.
func (c *ReportsClient) Output(ctx context.Context, reportID string) (string, error) {
	path := fmt.Sprintf("%s/reports/%s/output", c.basePath, reportID)

	output, err := c.httpClient.GetText(ctx, path, nil)
	if err != nil {
		return "", fmt.Errorf("getting report output: %w", err)
	}

	return output, nil
}

// Download implements criteo.ReportsClient.Download.
func (c *ReportsClient) Download(ctx context.Context, reportID, filePath string) (string, error) {
	path := fmt.Sprintf("%s/reports/%s/output", c.basePath, reportID)

	confirmation, err := c.httpClient.Download(ctx, path, nil, filePath)
	if err != nil {
		return "", fmt.Errorf("downloading report output: %w", err)
	}

	return confirmation, nil
}

// WaitForReport implements criteo.ReportsClient.WaitForReport. It polls
// the status endpoint until the report succeeds, fails, or the timeout
// elapses.
func (c *ReportsClient) WaitForReport(ctx context.Context, reportID string) (*criteo.Envelope[criteo.ReportStatus], error) {
	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		report, err := c.Status(ctx, reportID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %w", criteo.ErrReportTimeout, ctx.Err())
			}

			return nil, err
		}

		switch report.Data.Attributes.Status {
		case criteo.ReportStatusSuccess:
			return report, nil
		case criteo.ReportStatusFailure, criteo.ReportStatusExpired:
			return report, fmt.Errorf("%w: %s", criteo.ErrReportFailed, report.Data.Attributes.Message)
		}

		select {
		case <-ctx.Done():
			return report, fmt.Errorf("%w: %w", criteo.ErrReportTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}
