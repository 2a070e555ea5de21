package criteo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Criteo API. The status
// code is carried as a structured field so callers (and the request
// pipeline's retry decision) never have to parse it back out of the error
// text.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Title      string `json:"title,omitempty"`
	Detail     string `json:"detail,omitempty"`
	TraceID    string `json:"traceId,omitempty"`

	// Body is the raw response body, kept for diagnostics when the payload
	// is not a structured Criteo error document.
	Body string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Title != "" || e.Detail != "" {
		return fmt.Sprintf("API error %d: %s: %s", e.StatusCode, e.Title, e.Detail)
	}

	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// responseErrors is the error document shape the Criteo API returns.
type responseErrors struct {
	Errors []APIError `json:"errors"`
}

// NewAPIError builds an APIError from a response status and body, pulling
// out the first structured error entry when the body parses as a Criteo
// error document.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var doc responseErrors
	if json.Unmarshal(body, &doc) == nil && len(doc.Errors) > 0 {
		first := doc.Errors[0]
		apiErr.Code = first.Code
		apiErr.Title = first.Title
		apiErr.Detail = first.Detail
		apiErr.TraceID = first.TraceID
	}

	return apiErr
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrCredentialsRequired  = errors.New("client ID and client secret are required")
	ErrAccountIDRequired    = errors.New("account ID is required")
	ErrReportNotReady       = errors.New("report is not ready")
	ErrReportFailed         = errors.New("report generation failed")
	ErrReportTimeout        = errors.New("timed out waiting for report")
	ErrEmptyConsentKey      = errors.New("consent signing key must not be empty")
	ErrInvalidConsentURL    = errors.New("invalid consent URL")
	ErrMissingConsentParams = errors.New("consent URL is missing signed parameters")
)

// IsUnauthorized reports whether the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return statusCodeIs(err, http.StatusUnauthorized)
}

// IsForbidden reports whether the error is a 403 from the API.
func IsForbidden(err error) bool {
	return statusCodeIs(err, http.StatusForbidden)
}

// IsNotFound reports whether the error is a 404 from the API.
func IsNotFound(err error) bool {
	return statusCodeIs(err, http.StatusNotFound)
}

func statusCodeIs(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}
