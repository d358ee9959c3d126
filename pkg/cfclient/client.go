// Package cfclient provides the public constructors for a cfapi.Client.
//
// Most programs only need one of the convenience constructors:
//
//	cli, err := cfclient.NewWithToken(ctx, os.Getenv("CLOUDFLARE_API_TOKEN"))
//
// New accepts a full cfapi.Config for programs that need to tune the
// endpoint, retries, or logging.
package cfclient

import (
	"context"
	"strings"

	"github.com/Alos-no/cfapi/internal/client"
	"github.com/Alos-no/cfapi/internal/constants"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// New creates a client from the given configuration. A missing endpoint
// defaults to the public API; a bare host gains an https scheme and a
// trailing slash is trimmed so path joining stays predictable.
func New(ctx context.Context, config *cfapi.Config) (cfapi.Client, error) {
	if config == nil {
		return nil, cfapi.ErrConfigRequired
	}

	normalized := *config
	normalized.Endpoint = normalizeEndpoint(config.Endpoint)

	return client.New(&normalized)
}

// NewWithToken creates a client against the public API using a scoped API
// token.
func NewWithToken(ctx context.Context, token string) (cfapi.Client, error) {
	return New(ctx, &cfapi.Config{APIToken: token})
}

// NewWithAPIKey creates a client against the public API using the legacy
// global key and account email.
func NewWithAPIKey(ctx context.Context, key, email string) (cfapi.Client, error) {
	return New(ctx, &cfapi.Config{APIKey: key, APIEmail: email})
}

func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultEndpoint
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	return strings.TrimRight(endpoint, "/")
}
