package criteo

import (
	"time"
)

// Config configures a Criteo API client.
type Config struct {
	// Endpoint is the API host. Defaults to https://api.criteo.com.
	Endpoint string

	// Version is the path version prefix for retail media resources,
	// e.g. "preview" or "2024-07". Defaults to "preview".
	Version string

	// ClientID and ClientSecret drive the OAuth2 client-credentials
	// exchange.
	ClientID     string
	ClientSecret string

	// AccessToken, when set, is used as a pre-issued bearer token instead
	// of running the credentials exchange.
	AccessToken string

	// TokenURL overrides the token endpoint. Defaults to
	// Endpoint + "/oauth2/token".
	TokenURL string

	// UserAgent overrides the version-stamped default user agent.
	UserAgent string

	// Timeout bounds each HTTP request. Defaults to 12s.
	Timeout time.Duration

	// RetryMax enables transport-level retries on 5xx/429 when > 0. The
	// pipeline's single 401 replay is always on and independent of this.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives debug/error logs. Nil disables logging.
	Logger Logger

	// Debug logs full request and response details.
	Debug bool
}

// Logger is the interface for logging within the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Resource is the JSON:API-style wrapper every Criteo entity arrives in.
type Resource[T any] struct {
	ID         string `json:"id"`
	Type       string `json:"type,omitempty"`
	Attributes T      `json:"attributes"`
}

// Envelope wraps a single-resource response body.
type Envelope[T any] struct {
	Data     Resource[T] `json:"data"`
	Warnings []Message   `json:"warnings,omitempty"`
}

// ListEnvelope wraps a list response body.
type ListEnvelope[T any] struct {
	Data     []Resource[T] `json:"data"`
	Metadata *PageMetadata `json:"metadata,omitempty"`
	Warnings []Message     `json:"warnings,omitempty"`
}

// PageMetadata carries pagination counters for list responses.
type PageMetadata struct {
	TotalItemsAcrossAllPages int `json:"totalItemsAcrossAllPages"`
	CurrentPageSize          int `json:"currentPageSize"`
	CurrentPageIndex         int `json:"currentPageIndex"`
	TotalPages               int `json:"totalPages"`
}

// Message is a warning or informational entry attached to a response.
type Message struct {
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Account is a retail media account.
type Account struct {
	Name               string   `json:"name"`
	Type               string   `json:"type,omitempty"`
	Subtype            string   `json:"subtype,omitempty"`
	CountryIDs         []string `json:"countryIds,omitempty"`
	CurrencyID         string   `json:"currencyId,omitempty"`
	ParentAccountLabel string   `json:"parentAccountLabel,omitempty"`
}

// Brand is a brand an account can advertise for.
type Brand struct {
	Name string `json:"name"`
}

// Retailer is a retailer an account can run campaigns on.
type Retailer struct {
	Name                  string   `json:"name"`
	CampaignEligibilities []string `json:"campaignEligibilities,omitempty"`
}

// Campaign is a retail media campaign.
type Campaign struct {
	Name                   string     `json:"name"`
	AccountID              string     `json:"accountId,omitempty"`
	Status                 string     `json:"status,omitempty"`
	Type                   string     `json:"type,omitempty"`
	StartDate              string     `json:"startDate,omitempty"`
	EndDate                string     `json:"endDate,omitempty"`
	Budget                 *float64   `json:"budget,omitempty"`
	BudgetSpent            float64    `json:"budgetSpent,omitempty"`
	BudgetRemaining        *float64   `json:"budgetRemaining,omitempty"`
	ClickAttributionWindow string     `json:"clickAttributionWindow,omitempty"`
	ViewAttributionWindow  string     `json:"viewAttributionWindow,omitempty"`
	CreatedAt              *time.Time `json:"createdAt,omitempty"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"`
}

// CampaignCreate is the payload for creating a campaign.
type CampaignCreate struct {
	Name                   string   `json:"name"`
	StartDate              string   `json:"startDate,omitempty"`
	EndDate                string   `json:"endDate,omitempty"`
	Budget                 *float64 `json:"budget,omitempty"`
	ClickAttributionWindow string   `json:"clickAttributionWindow,omitempty"`
	ViewAttributionWindow  string   `json:"viewAttributionWindow,omitempty"`
}

// CampaignUpdate is the payload for updating a campaign.
type CampaignUpdate struct {
	Name      string   `json:"name,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
}

// LineItem is a campaign line item.
type LineItem struct {
	Name             string     `json:"name"`
	CampaignID       string     `json:"campaignId,omitempty"`
	TargetRetailerID string     `json:"targetRetailerId,omitempty"`
	Status           string     `json:"status,omitempty"`
	StartDate        string     `json:"startDate,omitempty"`
	EndDate          string     `json:"endDate,omitempty"`
	Budget           *float64   `json:"budget,omitempty"`
	BudgetSpent      float64    `json:"budgetSpent,omitempty"`
	BidStrategy      string     `json:"bidStrategy,omitempty"`
	TargetBid        *float64   `json:"targetBid,omitempty"`
	MaxBid           *float64   `json:"maxBid,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// LineItemCreate is the payload for creating a line item.
type LineItemCreate struct {
	Name             string   `json:"name"`
	TargetRetailerID string   `json:"targetRetailerId"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	Budget           *float64 `json:"budget,omitempty"`
	BidStrategy      string   `json:"bidStrategy,omitempty"`
	TargetBid        *float64 `json:"targetBid,omitempty"`
	MaxBid           *float64 `json:"maxBid,omitempty"`
}

// LineItemUpdate is the payload for updating a line item.
type LineItemUpdate struct {
	Name      string   `json:"name,omitempty"`
	Status    string   `json:"status,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
	TargetBid *float64 `json:"targetBid,omitempty"`
	MaxBid    *float64 `json:"maxBid,omitempty"`
}

// Balance is a billing balance attached to an account.
type Balance struct {
	Name           string   `json:"name"`
	PoNumber       string   `json:"poNumber,omitempty"`
	MemoCode       string   `json:"memoCode,omitempty"`
	Status         string   `json:"status,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	DepositedFunds *float64 `json:"depositedFunds,omitempty"`
	RemainingFunds *float64 `json:"remainingFunds,omitempty"`
	SpentFunds     *float64 `json:"spentFunds,omitempty"`
}

// BalanceFunds is the payload for adding funds to a balance.
type BalanceFunds struct {
	DeltaAmount float64 `json:"deltaAmount"`
	MemoCode    string  `json:"memoCode,omitempty"`
	PoNumber    string  `json:"poNumber,omitempty"`
}

// Audience is a commerce audience scoped to a retailer.
type Audience struct {
	Name        string     `json:"name"`
	RetailerID  string     `json:"retailerId,omitempty"`
	Type        string     `json:"type,omitempty"`
	CreatedByID string     `json:"createdById,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// AudienceCreate is the payload for creating an audience.
type AudienceCreate struct {
	Name       string `json:"name"`
	RetailerID string `json:"retailerId"`
	Type       string `json:"type,omitempty"`
}

// AudienceUpdate is the payload for updating an audience.
type AudienceUpdate struct {
	Name string `json:"name,omitempty"`
}

// CatalogStatus describes an asynchronous catalog export.
type CatalogStatus struct {
	Status        string     `json:"status"`
	Currency      string     `json:"currency,omitempty"`
	RowCount      *int64     `json:"rowCount,omitempty"`
	FileSizeBytes *int64     `json:"fileSizeBytes,omitempty"`
	Md5Checksum   string     `json:"md5Checksum,omitempty"`
	Message       string     `json:"message,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// ReportRequest describes an asynchronous analytics report.
type ReportRequest struct {
	IDs        []string `json:"ids,omitempty"`
	ID         string   `json:"id,omitempty"`
	ReportType string   `json:"reportType,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Timezone   string   `json:"timezone,omitempty"`
	Format     string   `json:"format,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
	Metrics    []string `json:"metrics,omitempty"`
}

// ReportStatus describes the state of an asynchronous report.
type ReportStatus struct {
	Status        string     `json:"status"`
	RowCount      *int64     `json:"rowCount,omitempty"`
	FileSizeBytes *int64     `json:"fileSizeBytes,omitempty"`
	Md5Checksum   string     `json:"md5Checksum,omitempty"`
	Message       string     `json:"message,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// Report status values.
const (
	ReportStatusPending = "pending"
	ReportStatusSuccess = "success"
	ReportStatusFailure = "failure"
	ReportStatusExpired = "expired"
)

// Creative is an ad creative attached to an account.
type Creative struct {
	Name       string     `json:"name"`
	Status     string     `json:"status,omitempty"`
	RetailerID string     `json:"retailerId,omitempty"`
	TemplateID string     `json:"templateId,omitempty"`
	FormatType string     `json:"formatType,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
