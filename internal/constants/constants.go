package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DownloadFilePerm is the permission for downloaded report files.
	DownloadFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 12 * time.Second

	// ExtendedHTTPTimeout is used for longer operations such as report
	// downloads.
	ExtendedHTTPTimeout = 45 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits for the optional transport-level retry. The pipeline's own
// single 401 replay is independent of these.
const (
	// DefaultRetryMax is the default maximum number of transport retries
	// when retries are enabled.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API surface.
const (
	// DefaultAPIEndpoint is the Criteo API host.
	DefaultAPIEndpoint = "https://api.criteo.com"

	// DefaultTokenPath is the OAuth token exchange path.
	DefaultTokenPath = "/oauth2/token"

	// DefaultAPIVersion is the version prefix for retail media paths.
	DefaultAPIVersion = "preview"
)

// Report polling.
const (
	// DefaultReportPollInterval is the default interval between report
	// status checks.
	DefaultReportPollInterval = 5 * time.Second

	// DefaultReportPollTimeout bounds how long WaitForReport polls before
	// giving up.
	DefaultReportPollTimeout = 10 * time.Minute
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 25

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100
)
