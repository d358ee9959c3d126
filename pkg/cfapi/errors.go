package cfapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a single error entry reported inside a v4 envelope.
type APIError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// Message represents an informational entry in the envelope's messages list.
// The core treats messages as opaque; they are surfaced for callers that want
// to log them.
type Message struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ResponseError is an API business failure: the HTTP status was 2xx but the
// envelope reported success=false. Errors preserves the wire order.
type ResponseError struct {
	Errors   []APIError `json:"errors"`
	Messages []Message  `json:"messages,omitempty"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return "unknown API error"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple API errors: %v", e.Errors)
}

// FirstError returns the first error entry or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// HTTPError is a transport failure: the HTTP status was outside the 2xx
// range. The body is kept verbatim; it is not required to parse as an
// envelope. A non-2xx status is always reported as an HTTPError even when
// the body happens to contain a failing envelope.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// DecodeError reports a malformed or unparseable response body. It is fatal
// to the call and never coerced into an empty result.
type DecodeError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding response: %s: %v", e.Reason, e.Err)
	}

	return "decoding response: " + e.Reason
}

// Unwrap returns the underlying decode error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MissingParamError reports a required argument that was absent or blank.
// It is raised before any network call is attempted.
type MissingParamError struct {
	Param string
}

// Error implements the error interface.
func (e *MissingParamError) Error() string {
	return "missing required parameter: " + e.Param
}

// Common Cloudflare error codes.
const (
	ErrorCodeAuthentication    = 10000
	ErrorCodeInvalidHeaders    = 6003
	ErrorCodeUnknownKey        = 9103
	ErrorCodeNoRoute           = 7000
	ErrorCodeInvalidIdentifier = 7003
	ErrorCodeRecordNotFound    = 81044
	ErrorCodeRecordExists      = 81057
	ErrorCodeBucketNotFound    = 10006
	ErrorCodeBucketExists      = 10004
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrEndpointRequired    = errors.New("API endpoint is required")
	ErrCredentialsRequired = errors.New("API token or API key and email are required")
	ErrNoMoreItems         = errors.New("no more items")
	ErrCircuitBreakerOpen  = errors.New("circuit breaker is open")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("invalid output format")
)

// statusIs reports whether err is an HTTPError with the given status.
func statusIs(err error, status int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == status
	}

	return false
}

// IsNotFound checks if the error is a 404 transport failure.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 transport failure.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 transport failure.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a 429 transport failure.
func IsRateLimited(err error) bool {
	return statusIs(err, http.StatusTooManyRequests)
}

// IsServerError checks if the error is a 5xx transport failure.
func IsServerError(err error) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

// HasErrorCode checks whether err carries the given business error code,
// either as a bare APIError or anywhere in a ResponseError's list.
func HasErrorCode(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		for _, entry := range respErr.Errors {
			if entry.Code == code {
				return true
			}
		}
	}

	return false
}
