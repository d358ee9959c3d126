package cfapi

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// jsonCodec decodes envelopes on the hot path. ConfigCompatibleWithStandardLibrary
// keeps encoding/json semantics for struct tags and RawMessage.
var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// PageInfo describes offset pagination metadata as reported by the API.
// Iteration continues while Page < TotalPages.
type PageInfo struct {
	Page       int `json:"page"        yaml:"page"`
	PerPage    int `json:"per_page"    yaml:"per_page"`
	Count      int `json:"count"       yaml:"count"`
	TotalCount int `json:"total_count" yaml:"total_count"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// Cursors holds the nested cursor block used by the newer API generation.
type Cursors struct {
	After  *string `json:"after,omitempty"  yaml:"after,omitempty"`
	Before *string `json:"before,omitempty" yaml:"before,omitempty"`
}

// CursorInfo describes cursor pagination metadata. Absence of a cursor is the
// sole termination signal; Count and PerPage are informational only.
type CursorInfo struct {
	Cursor  *string `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	Count   int     `json:"count"            yaml:"count"`
	PerPage int     `json:"per_page"         yaml:"per_page"`
}

// ResultInfo is the envelope's result_info block. Offset-paginated endpoints
// fill the embedded PageInfo; cursor-paginated endpoints fill either the
// inline Cursor field or, on the newer generation, the nested Cursors block.
type ResultInfo struct {
	PageInfo

	Cursor  *string  `json:"cursor,omitempty"  yaml:"cursor,omitempty"`
	Cursors *Cursors `json:"cursors,omitempty" yaml:"cursors,omitempty"`
}

// Pages returns the offset pagination view, or nil when the block carries no
// page counts.
func (ri *ResultInfo) Pages() *PageInfo {
	if ri == nil || (ri.TotalPages == 0 && ri.Page == 0) {
		return nil
	}

	info := ri.PageInfo

	return &info
}

// CursorView returns the cursor pagination view, normalizing both metadata
// generations onto one shape.
func (ri *ResultInfo) CursorView() *CursorInfo {
	if ri == nil {
		return nil
	}

	info := &CursorInfo{
		Count:   ri.Count,
		PerPage: ri.PerPage,
		Cursor:  ri.Cursor,
	}

	if info.Cursor == nil && ri.Cursors != nil {
		info.Cursor = ri.Cursors.After
	}

	return info
}

// NextCursor returns the continuation token for the next page, if one was
// reported. It prefers the inline cursor and falls back to cursors.after.
func (ri *ResultInfo) NextCursor() (string, bool) {
	if ri == nil {
		return "", false
	}

	if ri.Cursor != nil && *ri.Cursor != "" {
		return *ri.Cursor, true
	}

	if ri.Cursors != nil && ri.Cursors.After != nil && *ri.Cursors.After != "" {
		return *ri.Cursors.After, true
	}

	return "", false
}

// HasMorePages reports whether offset iteration should request another page.
func (ri *ResultInfo) HasMorePages() bool {
	return ri != nil && ri.Page < ri.TotalPages
}

// envelope is the uniform v4 response wrapper. Success is a pointer so a body
// that cannot locate the flag is distinguishable from success=false.
type envelope struct {
	Success    *bool           `json:"success"`
	Errors     []APIError      `json:"errors"`
	Messages   []Message       `json:"messages"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *ResultInfo     `json:"result_info"`
}

// decodeEnvelope parses the wrapper and applies the success/failure rules:
// a malformed wrapper is a DecodeError, success=false is a ResponseError
// carrying every error entry in wire order.
func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope

	err := jsonCodec.Unmarshal(body, &env)
	if err != nil {
		return nil, &DecodeError{Reason: "malformed response envelope", Err: err}
	}

	if env.Success == nil {
		return nil, &DecodeError{Reason: "response envelope has no success flag"}
	}

	if !*env.Success {
		return nil, &ResponseError{Errors: env.Errors, Messages: env.Messages}
	}

	return &env, nil
}

// DecodeResult decodes a successful envelope's result into T. A null or
// absent result yields the zero value of T rather than an error, so
// trigger-style operations with no payload decode cleanly.
func DecodeResult[T any](body []byte) (T, error) {
	var result T

	env, err := decodeEnvelope(body)
	if err != nil {
		return result, err
	}

	if len(env.Result) == 0 || string(env.Result) == "null" {
		return result, nil
	}

	err = jsonCodec.Unmarshal(env.Result, &result)
	if err != nil {
		return result, &DecodeError{Reason: "result payload", Err: err}
	}

	return result, nil
}

// DecodeResultInfo decodes a successful envelope's result into T and also
// returns the pagination metadata. Some cursor-paginated endpoints wrap their
// collection in an object rather than a bare array.
func DecodeResultInfo[T any](body []byte) (T, *ResultInfo, error) {
	var result T

	env, err := decodeEnvelope(body)
	if err != nil {
		return result, nil, err
	}

	if len(env.Result) == 0 || string(env.Result) == "null" {
		return result, env.ResultInfo, nil
	}

	err = jsonCodec.Unmarshal(env.Result, &result)
	if err != nil {
		return result, nil, &DecodeError{Reason: "result payload", Err: err}
	}

	return result, env.ResultInfo, nil
}

// DecodeList decodes a successful envelope's result as a collection and
// returns the pagination metadata when present. A null result decodes as an
// empty slice, never an error.
func DecodeList[T any](body []byte) ([]T, *ResultInfo, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, nil, err
	}

	items := []T{}

	if len(env.Result) > 0 && string(env.Result) != "null" {
		err = jsonCodec.Unmarshal(env.Result, &items)
		if err != nil {
			return nil, nil, &DecodeError{Reason: "result collection", Err: err}
		}
	}

	return items, env.ResultInfo, nil
}
