package client

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

func TestReportsClient_RequestCampaignReport(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/preview/retail-media/reports/campaigns", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "RetailMediaReportRequest", data["type"])

		attributes, ok := data["attributes"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "2026-08-01", attributes["startDate"])

		writeJSON(t, writer, `{"data": {"id": "rep1", "attributes": {"status": "pending"}}}`)
	})

	report, err := apiClient.Reports().RequestCampaignReport(context.Background(), &criteo.ReportRequest{
		IDs:       []string{"c1"},
		StartDate: "2026-08-01",
		EndDate:   "2026-08-25",
		Format:    "csv",
	})
	require.NoError(t, err)
	assert.Equal(t, "rep1", report.Data.ID)
	assert.Equal(t, criteo.ReportStatusPending, report.Data.Attributes.Status)
}

func TestReportsClient_Status(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/preview/retail-media/reports/rep1/status", request.URL.Path)
		writeJSON(t, writer, `{"data": {"id": "rep1", "attributes": {"status": "success", "rowCount": 42}}}`)
	})

	report, err := apiClient.Reports().Status(context.Background(), "rep1")
	require.NoError(t, err)
	assert.Equal(t, criteo.ReportStatusSuccess, report.Data.Attributes.Status)
	require.NotNil(t, report.Data.Attributes.RowCount)
	assert.Equal(t, int64(42), *report.Data.Attributes.RowCount)
}

func TestReportsClient_Output(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/preview/retail-media/reports/rep1/output", request.URL.Path)

		_, _ = writer.Write([]byte("date,clicks\n2026-08-01,42\n"))
	})

	output, err := apiClient.Reports().Output(context.Background(), "rep1")
	require.NoError(t, err)
	assert.Equal(t, "date,clicks\n2026-08-01,42\n", output)
}

func TestReportsClient_Download(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte("date,clicks\n2026-08-01,42\n"))
	})

	path := filepath.Join(t.TempDir(), "report.csv")

	confirmation, err := apiClient.Reports().Download(context.Background(), "rep1", path)
	require.NoError(t, err)
	assert.Contains(t, confirmation, path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,clicks\n2026-08-01,42\n", string(written))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestReportsClient_WaitForReport(t *testing.T) {
	t.Parallel()
	t.Run("polls until success", func(t *testing.T) {
		t.Parallel()

		var polls atomic.Int32

		apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if polls.Add(1) < 3 {
				writeJSON(t, writer, `{"data": {"id": "rep1", "attributes": {"status": "pending"}}}`)

				return
			}

			writeJSON(t, writer, `{"data": {"id": "rep1", "attributes": {"status": "success"}}}`)
		})

		reports, ok := apiClient.Reports().(*ReportsClient)
		require.True(t, ok)
		reports.pollInterval = 10 * time.Millisecond

		report, err := apiClient.Reports().WaitForReport(context.Background(), "rep1")
		require.NoError(t, err)
		assert.Equal(t, criteo.ReportStatusSuccess, report.Data.Attributes.Status)
		assert.Equal(t, int32(3), polls.Load())
	})

	t.Run("failed report stops polling", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, `{"data": {"id": "rep1", "attributes": {"status": "failure", "message": "no data"}}}`)
		})

		reports, ok := apiClient.Reports().(*ReportsClient)
		require.True(t, ok)
		reports.pollInterval = 10 * time.Millisecond

		_, err := apiClient.Reports().WaitForReport(context.Background(), "rep1")
		require.ErrorIs(t, err, criteo.ErrReportFailed)
		assert.Contains(t, err.Error(), "no data")
	})

	t.Run("times out on a report that never finishes", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, `{"data": {"id": "rep1", "attributes": {"status": "pending"}}}`)
		})

		reports, ok := apiClient.Reports().(*ReportsClient)
		require.True(t, ok)
		reports.pollInterval = 10 * time.Millisecond
		reports.pollTimeout = 50 * time.Millisecond

		_, err := apiClient.Reports().WaitForReport(context.Background(), "rep1")
		require.ErrorIs(t, err, criteo.ErrReportTimeout)
	})
}
