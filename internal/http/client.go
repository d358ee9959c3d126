// Package http implements the transport shared by every resource client:
// request construction, credential headers, retries for transient faults,
// and transport-failure classification.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Alos-no/cfapi/internal/auth"
	"github.com/Alos-no/cfapi/internal/constants"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// Request represents an API request. Path must already be percent-encoded
// (see cfapi.BuildPath); it is used verbatim so meaningful encoding survives
// to the wire. Query is an already-encoded query string without the leading
// '?'. Body is marshaled to JSON when non-nil.
type Request struct {
	Method  string
	Path    string
	Query   string
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the shared HTTP transport.
type Client struct {
	baseURL      string
	credentials  auth.Credentials
	httpClient   *retryablehttp.Client
	logger       cfapi.Logger
	debug        bool
	userAgent    string
	interceptors *cfapi.InterceptorChain
	cache        cfapi.Cache
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger cfapi.Logger) Option {
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

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport-level retries for transient failures
// (connection errors, 429, 5xx).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets a default per-request timeout. Contexts remain the
// preferred control.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors installs an interceptor chain around every request.
func WithInterceptors(chain *cfapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithResponseCache caches successful GET responses keyed by URL. Mutating
// requests invalidate the cached entry for their own URL; freshness beyond
// that is bounded only by the cache's TTL.
func WithResponseCache(cache cfapi.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// NewClient creates a transport rooted at baseURL. credentials may be nil
// for unauthenticated use (tests).
func NewClient(baseURL string, credentials auth.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	// Exhausted retries must still hand the final response back so a 429 or
	// 5xx classifies as an HTTPError instead of a bare transport failure.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     baseURL,
		credentials: credentials,
		httpClient:  retryClient,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request and classifies the outcome. Any non-2xx status is
// returned as a *cfapi.HTTPError carrying the numeric code, without
// attempting to parse the body; envelope interpretation for 2xx responses
// belongs to the caller.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if req.Query != "" {
		fullURL += "?" + req.Query
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.credentials != nil {
		c.credentials.Apply(httpReq.Header)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	info := &cfapi.RequestInfo{Method: req.Method, Path: req.Path, Headers: httpReq.Header}

	if c.interceptors != nil {
		err = c.interceptors.RunRequest(ctx, info)
		if err != nil {
			return nil, err
		}
	}

	if c.cache != nil {
		if req.Method == http.MethodGet {
			if entry, cacheErr := c.cache.Get(ctx, fullURL); cacheErr == nil {
				return &Response{StatusCode: entry.StatusCode, Body: entry.Body}, nil
			}
		} else {
			// A mutation stales at least its own resource URL.
			_ = c.cache.Delete(ctx, c.baseURL+req.Path)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.runResponseInterceptors(ctx, info, 0, time.Since(start), err)

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.runResponseInterceptors(ctx, info, httpResp.StatusCode, time.Since(start), err)

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		transportErr := &cfapi.HTTPError{StatusCode: resp.StatusCode, Body: body}
		c.runResponseInterceptors(ctx, info, resp.StatusCode, time.Since(start), transportErr)

		return resp, transportErr
	}

	c.runResponseInterceptors(ctx, info, resp.StatusCode, time.Since(start), nil)

	if c.cache != nil && req.Method == http.MethodGet {
		_ = c.cache.Set(ctx, fullURL, &cfapi.CacheEntry{StatusCode: resp.StatusCode, Body: body})
	}

	return resp, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *cfapi.RequestInfo, status int, duration time.Duration, cause error) {
	if c.interceptors == nil {
		return
	}

	respInfo := &cfapi.ResponseInfo{StatusCode: status, Duration: duration, Err: cause}

	err := c.interceptors.RunResponse(ctx, req, respInfo)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{"error": err.Error()})
	}
}

// Get performs a GET request. query is an already-encoded query string.
func (c *Client) Get(ctx context.Context, path, query string) (*Response, error) {
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
