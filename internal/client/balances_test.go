package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

func TestBalancesClient_List(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/preview/retail-media/accounts/123/balances", request.URL.Path)
		writeJSON(t, writer, `{"data": [{"id": "b1", "attributes": {"name": "q3-budget", "status": "active"}}]}`)
	})

	result, err := apiClient.Balances().List(context.Background(), "123", nil)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "q3-budget", result.Data[0].Attributes.Name)
}

func TestBalancesClient_Get(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/preview/retail-media/accounts/123/balances/b1", request.URL.Path)
		writeJSON(t, writer, `{"data": {"id": "b1", "attributes": {"name": "q3-budget", "remainingFunds": 1200.50}}}`)
	})

	balance, err := apiClient.Balances().Get(context.Background(), "123", "b1")
	require.NoError(t, err)
	require.NotNil(t, balance.Data.Attributes.RemainingFunds)
	assert.InDelta(t, 1200.50, *balance.Data.Attributes.RemainingFunds, 0.01)
}

func TestBalancesClient_AddFunds(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/preview/retail-media/accounts/123/balances/b1/add-funds", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "AddFundsToBalance", data["type"])

		attributes, ok := data["attributes"].(map[string]interface{})
		require.True(t, ok)
		assert.InDelta(t, 500.0, attributes["deltaAmount"], 0.01)

		writeJSON(t, writer, `{"data": {"id": "b1", "attributes": {"name": "q3-budget", "depositedFunds": 1700.50}}}`)
	})

	balance, err := apiClient.Balances().AddFunds(context.Background(), "123", "b1", &criteo.BalanceFunds{
		DeltaAmount: 500,
		MemoCode:    "top-up",
	})
	require.NoError(t, err)
	require.NotNil(t, balance.Data.Attributes.DepositedFunds)
	assert.InDelta(t, 1700.50, *balance.Data.Attributes.DepositedFunds, 0.01)
}
