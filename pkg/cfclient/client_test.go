package cfclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"empty defaults to public API", "", "https://api.cloudflare.com/client/v4"},
		{"bare host gains https", "api.example.com/client/v4", "https://api.example.com/client/v4"},
		{"trailing slash trimmed", "https://api.example.com/client/v4/", "https://api.example.com/client/v4"},
		{"explicit http kept", "http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeEndpoint(tt.endpoint))
		})
	}
}

func TestNewRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), nil)
	require.ErrorIs(t, err, cfapi.ErrConfigRequired)
}

func TestNewWithTokenAgainstServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/user/tokens/verify", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"errors":[],"messages":[],"result":{"id":"t-1","status":"active"}}`))
	}))
	t.Cleanup(server.Close)

	cli, err := New(context.Background(), &cfapi.Config{Endpoint: server.URL, APIToken: "token-1"})
	require.NoError(t, err)

	verification, err := cli.VerifyToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-1", verification.ID)
}

func TestNewWithAPIKeyRequiresBothParts(t *testing.T) {
	t.Parallel()

	_, err := NewWithAPIKey(context.Background(), "key", "")
	require.ErrorIs(t, err, cfapi.ErrCredentialsRequired)
}
