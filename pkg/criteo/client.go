package criteo

import (
	"context"
)

// AccountsClient provides access to retail media accounts.
type AccountsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListEnvelope[Account], error)
	Get(ctx context.Context, accountID string) (*Envelope[Account], error)
	ListBrands(ctx context.Context, accountID string, params *QueryParams) (*ListEnvelope[Brand], error)
	ListRetailers(ctx context.Context, accountID string, params *QueryParams) (*ListEnvelope[Retailer], error)
}

// CampaignsClient provides access to campaigns.
type CampaignsClient interface {
	List(ctx context.Context, accountID string, params *QueryParams) (*ListEnvelope[Campaign], error)
	Create(ctx context.Context, accountID string, request *CampaignCreate) (*Envelope[Campaign], error)
	Get(ctx context.Context, campaignID string) (*Envelope[Campaign], error)
	Update(ctx context.Context, campaignID string, request *CampaignUpdate) (*Envelope[Campaign], error)
}

// LineItemsClient provides access to campaign line items.
type LineItemsClient interface {
	List(ctx context.Context, campaignID string, params *QueryParams) (*ListEnvelope[LineItem], error)
	Create(ctx context.Context, campaignID string, request *LineItemCreate) (*Envelope[LineItem], error)
	Get(ctx context.Context, lineItemID string) (*Envelope[LineItem], error)
	Update(ctx context.Context, lineItemID string, request *LineItemUpdate) (*Envelope[LineItem], error)
}

// BalancesClient provides access to account balances.
type BalancesClient interface {
	List(ctx context.Context, accountID string, params *QueryParams) (*ListEnvelope[Balance], error)
	Get(ctx context.Context, accountID, balanceID string) (*Envelope[Balance], error)
	AddFunds(ctx context.Context, accountID, balanceID string, request *BalanceFunds) (*Envelope[Balance], error)
}

// AudiencesClient provides access to commerce audiences.
type AudiencesClient interface {
	List(ctx context.Context, accountID string, params *QueryParams) (*ListEnvelope[Audience], error)
	Create(ctx context.Context, accountID string, request *AudienceCreate) (*Envelope[Audience], error)
	Get(ctx context.Context, audienceID string) (*Envelope[Audience], error)
	Update(ctx context.Context, audienceID string, request *AudienceUpdate) (*Envelope[Audience], error)
}

// CatalogsClient provides access to asynchronous catalog exports.
type CatalogsClient interface {
	Request(ctx context.Context, accountID string) (*Envelope[CatalogStatus], error)
	Status(ctx context.Context, catalogID string) (*Envelope[CatalogStatus], error)
	Output(ctx context.Context, catalogID string) (string, error)
	Download(ctx context.Context, catalogID, path string) (string, error)
}

// ReportsClient provides access to asynchronous analytics reports.
type ReportsClient interface {
	RequestCampaignReport(ctx context.Context, request *ReportRequest) (*Envelope[ReportStatus], error)
	RequestLineItemReport(ctx context.Context, request *ReportRequest) (*Envelope[ReportStatus], error)
	Status(ctx context.Context, reportID string) (*Envelope[ReportStatus], error)
	Output(ctx context.Context, reportID string) (string, error)
	Download(ctx context.Context, reportID, path string) (string, error)
	WaitForReport(ctx context.Context, reportID string) (*Envelope[ReportStatus], error)
}

// CreativesClient provides access to creatives.
type CreativesClient interface {
	List(ctx context.Context, accountID string, params *QueryParams) (*ListEnvelope[Creative], error)
	Get(ctx context.Context, creativeID string) (*Envelope[Creative], error)
}

// RawClient issues a request to an arbitrary API path, returning the
// response as parsed JSON. Used by tooling that needs endpoints the typed
// surface does not cover yet.
type RawClient interface {
	GetJSON(ctx context.Context, path string, params *QueryParams) (any, error)
}

// Client is the full typed surface of the Criteo Retail Media API.
type Client interface {
	Accounts() AccountsClient
	Campaigns() CampaignsClient
	LineItems() LineItemsClient
	Balances() BalancesClient
	Audiences() AudiencesClient
	Catalogs() CatalogsClient
	Reports() ReportsClient
	Creatives() CreativesClient

	RawClient

	// GetToken returns the current access token, authenticating first if
	// none is held yet.
	GetToken(ctx context.Context) (string, error)
}
