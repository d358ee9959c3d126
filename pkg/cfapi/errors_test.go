package cfapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	err := &APIError{Code: 7003, Message: "Could not route"}
	assert.Equal(t, "Could not route (code: 7003)", err.Error())
}

func TestResponseErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *ResponseError
		expect string
	}{
		{
			name:   "no entries",
			err:    &ResponseError{},
			expect: "unknown API error",
		},
		{
			name:   "single entry",
			err:    &ResponseError{Errors: []APIError{{Code: 10000, Message: "Authentication error"}}},
			expect: "Authentication error (code: 10000)",
		},
		{
			name: "multiple entries",
			err: &ResponseError{Errors: []APIError{
				{Code: 7003, Message: "first"},
				{Code: 7000, Message: "second"},
			}},
			expect: "multiple API errors",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, tt.err.Error(), tt.expect)
		})
	}
}

func TestResponseErrorFirstError(t *testing.T) {
	t.Parallel()

	err := &ResponseError{Errors: []APIError{{Code: 1}, {Code: 2}}}
	require.NotNil(t, err.FirstError())
	assert.Equal(t, 1, err.FirstError().Code)

	assert.Nil(t, (&ResponseError{}).FirstError())
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"404 is not found", &HTTPError{StatusCode: http.StatusNotFound}, IsNotFound, true},
		{"401 is unauthorized", &HTTPError{StatusCode: http.StatusUnauthorized}, IsUnauthorized, true},
		{"403 is forbidden", &HTTPError{StatusCode: http.StatusForbidden}, IsForbidden, true},
		{"429 is rate limited", &HTTPError{StatusCode: http.StatusTooManyRequests}, IsRateLimited, true},
		{"500 is server error", &HTTPError{StatusCode: http.StatusInternalServerError}, IsServerError, true},
		{"503 is server error", &HTTPError{StatusCode: http.StatusServiceUnavailable}, IsServerError, true},
		{"404 is not a server error", &HTTPError{StatusCode: http.StatusNotFound}, IsServerError, false},
		{"business error is not a 404", &ResponseError{Errors: []APIError{{Code: 7003}}}, IsNotFound, false},
		{"nil error", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestStatusHelpersSeeThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("fetching zone: %w", &HTTPError{StatusCode: http.StatusNotFound})
	assert.True(t, IsNotFound(wrapped))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestHasErrorCode(t *testing.T) {
	t.Parallel()

	respErr := &ResponseError{Errors: []APIError{
		{Code: ErrorCodeInvalidIdentifier, Message: "bad id"},
		{Code: ErrorCodeRecordNotFound, Message: "no record"},
	}}

	assert.True(t, HasErrorCode(respErr, ErrorCodeRecordNotFound))
	assert.True(t, HasErrorCode(respErr, ErrorCodeInvalidIdentifier))
	assert.False(t, HasErrorCode(respErr, ErrorCodeBucketExists))

	bare := &APIError{Code: ErrorCodeAuthentication}
	assert.True(t, HasErrorCode(bare, ErrorCodeAuthentication))
	assert.False(t, HasErrorCode(nil, ErrorCodeAuthentication))
}

func TestMissingParamError(t *testing.T) {
	t.Parallel()

	err := &MissingParamError{Param: "zoneID"}
	assert.Equal(t, "missing required parameter: zoneID", err.Error())
}

func TestDecodeErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of input")
	err := &DecodeError{Reason: "malformed response envelope", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed response envelope")
}
