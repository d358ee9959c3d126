package cfapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChainOrder(t *testing.T) {
	t.Parallel()

	var order []string

	chain := NewInterceptorChain().
		OnRequest(func(ctx context.Context, req *RequestInfo) error {
			order = append(order, "first")

			return nil
		}).
		OnRequest(func(ctx context.Context, req *RequestInfo) error {
			order = append(order, "second")

			return nil
		})

	err := chain.RunRequest(context.Background(), &RequestInfo{Method: http.MethodGet, Path: "/zones"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChainAbortsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("denied")
	reached := false

	chain := NewInterceptorChain().
		OnRequest(func(ctx context.Context, req *RequestInfo) error {
			return boom
		}).
		OnRequest(func(ctx context.Context, req *RequestInfo) error {
			reached = true

			return nil
		})

	err := chain.RunRequest(context.Background(), &RequestInfo{})
	require.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &RequestInfo{Headers: http.Header{}}

	interceptor := HeaderInterceptor(map[string]string{"X-Audit-Reason": "cleanup"})
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "cleanup", req.Headers.Get("X-Audit-Reason"))
}

func TestRateLimitInterceptorHonorsCancellation(t *testing.T) {
	t.Parallel()

	interceptor, stop := RateLimitInterceptor(1)
	defer stop()

	// First request consumes the only token.
	require.NoError(t, interceptor(context.Background(), &RequestInfo{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := interceptor(ctx, &RequestInfo{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimitInterceptorStop(t *testing.T) {
	t.Parallel()

	interceptor, stop := RateLimitInterceptor(2)

	// Stopping is idempotent and does not invalidate tokens already in the
	// bucket.
	stop()
	stop()

	require.NoError(t, interceptor(context.Background(), &RequestInfo{}))
	require.NoError(t, interceptor(context.Background(), &RequestInfo{}))

	// With the refill stopped and the bucket drained, a request can only end
	// with its context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := interceptor(ctx, &RequestInfo{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMetricsInterceptor(t *testing.T) {
	t.Parallel()

	collector := NewMetricsCollector()
	interceptor := MetricsInterceptor(collector)

	req := &RequestInfo{Method: http.MethodGet, Path: "/zones"}

	require.NoError(t, interceptor(context.Background(), req,
		&ResponseInfo{StatusCode: http.StatusOK, Duration: 10 * time.Millisecond}))
	require.NoError(t, interceptor(context.Background(), req,
		&ResponseInfo{StatusCode: http.StatusInternalServerError, Duration: 20 * time.Millisecond}))

	metrics := collector.Metrics("GET /zones")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Equal(t, 30*time.Millisecond, metrics.TotalLatency)

	assert.Nil(t, collector.Metrics("POST /zones"))
}

func TestCircuitBreakerTripsAndRecovers(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(2, 10*time.Millisecond)
	onRequest := BreakerRequestInterceptor(breaker)
	onResponse := BreakerResponseInterceptor(breaker)

	ctx := context.Background()
	req := &RequestInfo{Method: http.MethodGet, Path: "/zones"}
	fail := &ResponseInfo{StatusCode: http.StatusBadGateway}

	// Two consecutive server faults trip the breaker.
	require.NoError(t, onResponse(ctx, req, fail))
	require.NoError(t, onResponse(ctx, req, fail))

	err := onRequest(ctx, req)
	require.ErrorIs(t, err, ErrCircuitBreakerOpen)

	// After the cooldown a probe request passes through.
	time.Sleep(15 * time.Millisecond)
	require.NoError(t, onRequest(ctx, req))

	// A success resets the failure streak.
	require.NoError(t, onResponse(ctx, req, &ResponseInfo{StatusCode: http.StatusOK}))
	require.NoError(t, onRequest(ctx, req))
}
