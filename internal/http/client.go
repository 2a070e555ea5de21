package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/joepikowski/criteo-api-go-client/internal/auth"
	"github.com/joepikowski/criteo-api-go-client/internal/constants"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one logical API call in flight, including its retry and
// settlement state. A Request is created fresh per call and must not be
// reused after it settles.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// Handler interprets the raw response. Nil selects RawHandler.
	Handler ResponseHandler

	// OnComplete, when set, is invoked with the outcome exactly once, on
	// either the success or failure path. The same outcome is also
	// returned from Do.
	OnComplete func(*Response, error)

	retried bool
	settled bool
}

// Response represents a raw HTTP response plus the handler's output.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte

	// Result is the output of the request's ResponseHandler.
	Result interface{}
}

// Client executes authenticated requests against the Criteo API. Every call
// runs the same chain: ensure a token, execute, replay once on 401 after
// re-authenticating, settle.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       Logger
	debug        bool
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each HTTP request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries on 5xx and 429. This is
// independent of the single 401 replay, which is always on.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// NewClient creates a new authenticated HTTP client. A nil tokenManager
// produces an unauthenticated client, which is useful in tests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	// Transport retries are opt-in via WithRetryConfig; by default the
	// pipeline's 401 replay is the only automatic recovery.
	retryClient.RetryMax = 0
	// Hand back the final response once retries are exhausted so the
	// handler can turn it into a structured API error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    "criteo-api-go-client/" + criteo.Version,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do runs the request through the pipeline and settles the outcome: the
// OnComplete callback (if any) fires exactly once, and the same outcome is
// returned to the caller.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.submit(ctx, req)
	c.settle(req, resp, err)

	return resp, err
}

// submit is the resubmission point for the retry decision: a 401 on the
// first attempt re-enters here with req.retried set, which forces a fresh
// token before the replay.
func (c *Client) submit(ctx context.Context, req *Request) (*Response, error) {
	token := ""

	// The token exchange itself never passes through this client: the
	// authenticator holds its own plain HTTP client, so authenticating
	// cannot recurse into authentication.
	if c.tokenManager != nil {
		var err error

		token, err = c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("authenticating request: %w", err)
		}
	}

	resp, err := c.execute(ctx, req, token)
	if err == nil {
		return resp, nil
	}

	if c.tokenManager != nil && !req.retried && criteo.IsUnauthorized(err) {
		req.retried = true

		refreshErr := c.tokenManager.RefreshToken(ctx)
		if refreshErr != nil {
			return nil, fmt.Errorf("re-authenticating after 401: %w", refreshErr)
		}

		return c.submit(ctx, req)
	}

	return resp, err
}

// execute sends the request and feeds the raw response through the
// request's handler. Both transport failures and handler failures propagate
// to the retry decision in submit.
func (c *Client) execute(ctx context.Context, req *Request, token string) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body []byte

	if req.Body != nil {
		var err error

		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"body":   string(body),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
			"body":        string(respBody),
		})
	}

	handler := req.Handler
	if handler == nil {
		handler = RawHandler{}
	}

	result, err := handler.Handle(resp)
	if err != nil {
		return resp, err
	}

	resp.Result = result

	return resp, nil
}

// settle fires the completion callback at most once.
func (c *Client) settle(req *Request, resp *Response, err error) {
	if req.OnComplete == nil || req.settled {
		return
	}

	req.settled = true
	req.OnComplete(resp, err)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// GetJSON performs a GET request and returns the body parsed as JSON. An
// empty body yields true.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error) {
	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Handler: JSONHandler{},
	})
	if err != nil {
		return nil, err
	}

	return resp.Result, nil
}

// GetText performs a GET request and returns the body as text, for
// endpoints serving CSV or other non-JSON output.
func (c *Client) GetText(ctx context.Context, path string, query url.Values) (string, error) {
	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Handler: RawHandler{},
	})
	if err != nil {
		return "", err
	}

	if text, ok := resp.Result.(string); ok {
		return text, nil
	}

	return "", nil
}

// Download performs a GET request and writes the response body verbatim to
// filePath, returning a confirmation message.
func (c *Client) Download(ctx context.Context, path string, query url.Values, filePath string) (string, error) {
	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Handler: FileHandler{Path: filePath},
	})
	if err != nil {
		return "", err
	}

	confirmation, _ := resp.Result.(string)

	return confirmation, nil
}
