package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 4

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the server default number of items per page.
	DefaultPageSize = 20

	// LargePageSize is used for efficient bulk listing.
	LargePageSize = 100

	// MaxPageSize is the largest per_page the API accepts.
	MaxPageSize = 500
)

// Output formats.
const (
	// FormatTable renders results as a terminal table.
	FormatTable = "table"

	// FormatJSON for JSON output.
	FormatJSON = "json"

	// FormatYAML for YAML output.
	FormatYAML = "yaml"
)

// API defaults.
const (
	// DefaultEndpoint is the public v4 API base URL.
	DefaultEndpoint = "https://api.cloudflare.com/client/v4"

	// DefaultUserAgent identifies this library on the wire.
	DefaultUserAgent = "cfapi-go"
)
