package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

func TestAccountsClient_List(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/preview/retail-media/accounts", request.URL.Path)
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
		assert.Equal(t, "25", request.URL.Query().Get("pageSize"))

		writeJSON(t, writer, `{
			"data": [
				{"id": "1", "type": "RetailMediaAccount", "attributes": {"name": "first", "currencyId": "USD"}},
				{"id": "2", "type": "RetailMediaAccount", "attributes": {"name": "second"}}
			],
			"metadata": {"totalItemsAcrossAllPages": 2, "currentPageSize": 25, "currentPageIndex": 0, "totalPages": 1}
		}`)
	})

	result, err := apiClient.Accounts().List(context.Background(), criteo.NewQueryParams().WithPageSize(25))
	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "1", result.Data[0].ID)
	assert.Equal(t, "first", result.Data[0].Attributes.Name)
	assert.Equal(t, "USD", result.Data[0].Attributes.CurrencyID)
	require.NotNil(t, result.Metadata)
	assert.Equal(t, 2, result.Metadata.TotalItemsAcrossAllPages)
}

func TestAccountsClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/preview/retail-media/accounts/123", request.URL.Path)
			writeJSON(t, writer, `{"data": {"id": "123", "type": "RetailMediaAccount", "attributes": {"name": "acct"}}}`)
		})

		account, err := apiClient.Accounts().Get(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, "123", account.Data.ID)
		assert.Equal(t, "acct", account.Data.Attributes.Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			writeJSON(t, writer, `{"errors": [{"code": "account-not-found", "title": "Account not found"}]}`)
		})

		_, err := apiClient.Accounts().Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, criteo.IsNotFound(err))
		assert.Contains(t, err.Error(), "getting account")
	})
}

func TestAccountsClient_ListBrands(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/preview/retail-media/accounts/123/brands", request.URL.Path)
		writeJSON(t, writer, `{"data": [{"id": "b1", "attributes": {"name": "brand-one"}}]}`)
	})

	brands, err := apiClient.Accounts().ListBrands(context.Background(), "123", nil)
	require.NoError(t, err)
	require.Len(t, brands.Data, 1)
	assert.Equal(t, "brand-one", brands.Data[0].Attributes.Name)
}

func TestAccountsClient_ListRetailers(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/preview/retail-media/accounts/123/retailers", request.URL.Path)
		writeJSON(t, writer, `{"data": [{"id": "r1", "attributes": {"name": "retailer-one", "campaignEligibilities": ["auction"]}}]}`)
	})

	retailers, err := apiClient.Accounts().ListRetailers(context.Background(), "123", nil)
	require.NoError(t, err)
	require.Len(t, retailers.Data, 1)
	assert.Equal(t, "retailer-one", retailers.Data[0].Attributes.Name)
	assert.Equal(t, []string{"auction"}, retailers.Data[0].Attributes.CampaignEligibilities)
}
