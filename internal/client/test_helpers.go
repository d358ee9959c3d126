package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// newTestClient starts an httptest server for handler and returns a client
// pointed at it. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&cfapi.Config{
		Endpoint: server.URL,
		APIToken: "test-token",
	})
	require.NoError(t, err)

	return client
}

// newTestClientWithKey is newTestClient with legacy key/email credentials.
func newTestClientWithKey(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&cfapi.Config{
		Endpoint: server.URL,
		APIKey:   "global-key",
		APIEmail: "user@example.com",
	})
	require.NoError(t, err)

	return client
}

// respondJSON writes a canned JSON body with the given status.
func respondJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

// successEnvelope wraps a result literal in a minimal success envelope.
func successEnvelope(result string) string {
	return `{"success":true,"errors":[],"messages":[],"result":` + result + `}`
}
