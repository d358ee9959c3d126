package cfapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BuildPath joins path segments into a resource path, percent-encoding each
// segment independently. Literal '/', '+', '&', '%', '#', '=' or spaces in an
// identifier never corrupt path segmentation.
func BuildPath(segments ...string) string {
	var builder strings.Builder

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(escapeSegment(segment))
	}

	return builder.String()
}

const upperHex = "0123456789ABCDEF"

// escapeSegment percent-encodes every byte outside the RFC 3986 unreserved
// set. Stricter than url.PathEscape, which leaves sub-delims such as '+',
// '&', and '=' raw inside a segment.
func escapeSegment(segment string) string {
	var builder strings.Builder

	for i := 0; i < len(segment); i++ {
		c := segment[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			builder.WriteByte(c)
		default:
			builder.WriteByte('%')
			builder.WriteByte(upperHex[c>>4])
			builder.WriteByte(upperHex[c&0xF])
		}
	}

	return builder.String()
}

// Params builds a query string from optional filter values. Multi-word
// parameter names are joined by the style's separator: underscores for most
// endpoints, dots for the newer audit-log generation. The caller selects the
// style per endpoint; nothing is inferred.
//
// Absent values are omitted entirely, array values emit one repeated
// key=value pair per element in order, and pagination parameters are
// appended after all domain filters. Encoding preserves insertion order.
type Params struct {
	sep    string
	order  []string
	values map[string][]string
}

// NewParams creates a builder using underscore naming ("match_type").
func NewParams() *Params {
	return &Params{sep: "_", values: make(map[string][]string)}
}

// NewDotParams creates a builder using dot naming ("action.type").
func NewDotParams() *Params {
	return &Params{sep: ".", values: make(map[string][]string)}
}

// name converts a space-separated word list into the wire parameter name.
func (p *Params) name(words string) string {
	return strings.ReplaceAll(strings.ToLower(words), " ", p.sep)
}

func (p *Params) add(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.order = append(p.order, key)
	}

	p.values[key] = append(p.values[key], value)
}

// Set adds a parameter with the given value. The name is a space-separated
// word list, e.g. "match type" becomes "match_type" or "match.type".
func (p *Params) Set(words, value string) *Params {
	p.add(p.name(words), value)

	return p
}

// String adds an optional string parameter, omitted when nil or empty.
func (p *Params) String(words string, value *string) *Params {
	if value != nil && *value != "" {
		p.add(p.name(words), *value)
	}

	return p
}

// Int adds an optional integer parameter, omitted when nil.
func (p *Params) Int(words string, value *int) *Params {
	if value != nil {
		p.add(p.name(words), strconv.Itoa(*value))
	}

	return p
}

// Bool adds an optional boolean parameter as "true"/"false", omitted when nil.
func (p *Params) Bool(words string, value *bool) *Params {
	if value != nil {
		p.add(p.name(words), strconv.FormatBool(*value))
	}

	return p
}

// Time adds an optional timestamp parameter, always formatted as an RFC 3339
// UTC instant, omitted when nil.
func (p *Params) Time(words string, value *time.Time) *Params {
	if value != nil {
		p.add(p.name(words), value.UTC().Format(time.RFC3339))
	}

	return p
}

// Enum adds an optional open-enum parameter, omitted when zero. The literal
// is emitted as-is.
func (p *Params) Enum(words string, value Enum) *Params {
	if !value.IsZero() {
		p.add(p.name(words), value.Value())
	}

	return p
}

// Strings adds an array-valued parameter as one repeated key=value pair per
// element, preserving element order. An empty slice is omitted.
func (p *Params) Strings(words string, values []string) *Params {
	key := p.name(words)
	for _, value := range values {
		p.add(key, value)
	}

	return p
}

// Page appends offset pagination parameters. These always use underscore
// naming regardless of the builder's filter style. Zero values are omitted.
func (p *Params) Page(page, perPage int) *Params {
	if page > 0 {
		p.add("page", strconv.Itoa(page))
	}

	if perPage > 0 {
		p.add("per_page", strconv.Itoa(perPage))
	}

	return p
}

// Cursor appends cursor pagination parameters. The cursor is omitted when
// empty, which is the first-page request.
func (p *Params) Cursor(cursor string, perPage int) *Params {
	if cursor != "" {
		p.add("cursor", cursor)
	}

	if perPage > 0 {
		p.add("per_page", strconv.Itoa(perPage))
	}

	return p
}

// IsZero reports whether no parameters were set.
func (p *Params) IsZero() bool {
	return p == nil || len(p.order) == 0
}

// Encode produces the query string without a leading '?', preserving
// insertion order. An empty builder encodes to the empty string, so callers
// never produce a malformed "?&".
func (p *Params) Encode() string {
	if p.IsZero() {
		return ""
	}

	var builder strings.Builder

	for _, key := range p.order {
		escapedKey := url.QueryEscape(key)
		for _, value := range p.values[key] {
			if builder.Len() > 0 {
				builder.WriteByte('&')
			}

			builder.WriteString(escapedKey)
			builder.WriteByte('=')
			builder.WriteString(url.QueryEscape(value))
		}
	}

	return builder.String()
}

// Values returns the parameters as url.Values for transports that want the
// standard representation. Repeated keys keep their element order.
func (p *Params) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	for key, entry := range p.values {
		values[key] = append([]string(nil), entry...)
	}

	return values
}
