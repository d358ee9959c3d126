package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alos-no/cfapi/internal/auth"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/zones", r.URL.Path)
		assert.Equal(t, "status=active", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, &auth.TokenCredentials{Token: "tok"})

	resp, err := client.Get(context.Background(), "/zones", "status=active")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, string(resp.Body))
}

func TestClientPostMarshalsBody(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "example.com", body["name"])

		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil)

	_, err := client.Post(context.Background(), "/zones", map[string]string{"name": "example.com"})
	require.NoError(t, err)
}

func TestClientNonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":7003,"message":"not found"}]}`))
	})

	client := NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/zones/missing", "")

	var httpErr *cfapi.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)

	// The verbatim body rides along for diagnostics, on both the error and
	// the response.
	assert.Contains(t, string(httpErr.Body), "7003")
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientPreservesEscapedPath(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones/a%2Fb/settings", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), cfapi.BuildPath("zones", "a/b", "settings"), "")
	require.NoError(t, err)
}

func TestClientCustomHeaders(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eu", r.Header.Get("cf-r2-jurisdiction"))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil)

	_, err := client.Do(context.Background(), &Request{
		Method:  http.MethodGet,
		Path:    "/accounts/a/r2/buckets",
		Headers: map[string]string{"cf-r2-jurisdiction": "eu"},
	})
	require.NoError(t, err)
}

func TestClientUserAgent(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil, WithUserAgent("custom-agent/1.0"))

	_, err := client.Get(context.Background(), "/user", "")
	require.NoError(t, err)
}

func TestClientRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil,
		WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/zones", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClientInterceptors(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "injected", r.Header.Get("X-Extra"))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	var observedStatus int

	chain := cfapi.NewInterceptorChain().
		OnRequest(cfapi.HeaderInterceptor(map[string]string{"X-Extra": "injected"})).
		OnResponse(func(ctx context.Context, req *cfapi.RequestInfo, resp *cfapi.ResponseInfo) error {
			observedStatus = resp.StatusCode

			return nil
		})

	client := NewClient(server.URL, nil, WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/zones", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, observedStatus)
}

func TestClientRequestInterceptorAbort(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the network")
	})

	chain := cfapi.NewInterceptorChain().
		OnRequest(func(ctx context.Context, req *cfapi.RequestInfo) error {
			return cfapi.ErrCircuitBreakerOpen
		})

	client := NewClient(server.URL, nil, WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/zones", "")
	require.ErrorIs(t, err, cfapi.ErrCircuitBreakerOpen)
}

func TestClientResponseCacheServesRepeatGets(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"success":true,"result":{"id":"zone-1"}}`))
	})

	client := NewClient(server.URL, nil,
		WithResponseCache(cfapi.NewMemoryCache(8, time.Minute)))

	first, err := client.Get(context.Background(), "/zones/zone-1", "")
	require.NoError(t, err)

	second, err := client.Get(context.Background(), "/zones/zone-1", "")
	require.NoError(t, err)

	// The second GET is served from cache without touching the network.
	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, http.StatusOK, second.StatusCode)
}

func TestClientResponseCacheKeyIncludesQuery(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil,
		WithResponseCache(cfapi.NewMemoryCache(8, time.Minute)))

	_, err := client.Get(context.Background(), "/zones", "page=1")
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/zones", "page=2")
	require.NoError(t, err)

	assert.Equal(t, int32(2), requests.Load())
}

func TestClientResponseCacheInvalidatedByMutation(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			requests.Add(1)
		}

		_, _ = w.Write([]byte(`{"success":true}`))
	})

	client := NewClient(server.URL, nil,
		WithResponseCache(cfapi.NewMemoryCache(8, time.Minute)))

	_, err := client.Get(context.Background(), "/zones/zone-1", "")
	require.NoError(t, err)

	// A mutation of the same resource drops the cached entry.
	_, err = client.Patch(context.Background(), "/zones/zone-1", map[string]string{"paused": "true"})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/zones/zone-1", "")
	require.NoError(t, err)

	assert.Equal(t, int32(2), requests.Load())
}

func TestClientResponseCacheSkipsErrors(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	client := NewClient(server.URL, nil,
		WithResponseCache(cfapi.NewMemoryCache(8, time.Minute)))

	_, err := client.Get(context.Background(), "/zones/missing", "")
	require.Error(t, err)

	_, err = client.Get(context.Background(), "/zones/missing", "")
	require.Error(t, err)

	// Failures are never cached.
	assert.Equal(t, int32(2), requests.Load())
}

func TestClientContextCancellation(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	client := NewClient(server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/zones", "")
	require.Error(t, err)
}
