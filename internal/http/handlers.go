package http

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joepikowski/criteo-api-go-client/internal/constants"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// ResponseHandler interprets a raw HTTP response into a caller-facing
// result. Handlers are selected per call by the endpoint method, not by the
// pipeline.
type ResponseHandler interface {
	Handle(resp *Response) (interface{}, error)
}

// validateStatus rejects responses outside 200-299, carrying the status
// code and raw body for diagnostics.
func validateStatus(resp *Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return criteo.NewAPIError(resp.StatusCode, resp.Body)
	}

	return nil
}

// JSONHandler parses the body as JSON. An empty body is treated as boolean
// success rather than an error, since the API answers some writes with 204.
type JSONHandler struct{}

// Handle implements ResponseHandler.
func (JSONHandler) Handle(resp *Response) (interface{}, error) {
	err := validateStatus(resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Body) == 0 {
		return true, nil
	}

	var result interface{}

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON response: %w", err)
	}

	return result, nil
}

// RawHandler returns the body string unchanged. An empty body yields true,
// matching JSONHandler.
type RawHandler struct{}

// Handle implements ResponseHandler.
func (RawHandler) Handle(resp *Response) (interface{}, error) {
	err := validateStatus(resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Body) == 0 {
		return true, nil
	}

	return string(resp.Body), nil
}

// FileHandler writes the body verbatim to Path and returns a confirmation
// string.
type FileHandler struct {
	Path string
}

// Handle implements ResponseHandler.
func (h FileHandler) Handle(resp *Response) (interface{}, error) {
	err := validateStatus(resp)
	if err != nil {
		return nil, err
	}

	err = os.WriteFile(h.Path, resp.Body, constants.DownloadFilePerm)
	if err != nil {
		return nil, fmt.Errorf("writing response to %s: %w", h.Path, err)
	}

	return fmt.Sprintf("saved %d bytes to %s", len(resp.Body), h.Path), nil
}
