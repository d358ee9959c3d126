package cfapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RequestInfo describes an outgoing request as seen by interceptors. Headers
// may be mutated; the transport applies them before sending.
type RequestInfo struct {
	Method  string
	Path    string
	Headers http.Header
}

// ResponseInfo describes a completed exchange as seen by interceptors.
type ResponseInfo struct {
	StatusCode int
	Duration   time.Duration
	Err        error
}

// RequestInterceptor is called before a request is sent. Returning an error
// aborts the call without touching the network.
type RequestInterceptor func(ctx context.Context, req *RequestInfo) error

// ResponseInterceptor is called after a response is received or the
// transport fails.
type ResponseInterceptor func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error

// InterceptorChain composes request and response interceptors. The zero
// value is usable.
type InterceptorChain struct {
	request  []RequestInterceptor
	response []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// OnRequest appends a request interceptor.
func (c *InterceptorChain) OnRequest(interceptor RequestInterceptor) *InterceptorChain {
	c.request = append(c.request, interceptor)

	return c
}

// OnResponse appends a response interceptor.
func (c *InterceptorChain) OnResponse(interceptor ResponseInterceptor) *InterceptorChain {
	c.response = append(c.response, interceptor)

	return c
}

// RunRequest executes the request interceptors in order.
func (c *InterceptorChain) RunRequest(ctx context.Context, req *RequestInfo) error {
	for _, interceptor := range c.request {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// RunResponse executes the response interceptors in order.
func (c *InterceptorChain) RunResponse(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
	for _, interceptor := range c.response {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs outgoing requests at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs completed exchanges, at error level when
// the exchange failed.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"duration_ms": resp.Duration.Milliseconds(),
		}

		if resp.Err != nil {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// RateLimitInterceptor applies client-side rate limiting with a token
// bucket. It blocks until a token is available or the context is canceled.
// The returned stop func terminates the refill goroutine; calling it more
// than once is safe. Requests issued after stop drain the remaining tokens
// and then block until their context is canceled.
func RateLimitInterceptor(requestsPerSecond int) (RequestInterceptor, func()) {
	bucket := make(chan struct{}, requestsPerSecond)
	for i := 0; i < requestsPerSecond; i++ {
		bucket <- struct{}{}
	}

	done := make(chan struct{})

	var once sync.Once
	stop := func() {
		once.Do(func() { close(done) })
	}

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(requestsPerSecond))
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case bucket <- struct{}{}:
				default:
				}
			}
		}
	}()

	interceptor := func(ctx context.Context, req *RequestInfo) error {
		select {
		case <-bucket:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return interceptor, stop
}

// CallMetrics aggregates per-endpoint request statistics.
type CallMetrics struct {
	TotalRequests int64
	TotalErrors   int64
	TotalLatency  time.Duration
}

// MetricsCollector gathers CallMetrics keyed by "METHOD path".
type MetricsCollector struct {
	mu      sync.Mutex
	metrics map[string]*CallMetrics
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{metrics: make(map[string]*CallMetrics)}
}

// Metrics returns a copy of the metrics for an endpoint, or nil.
func (m *MetricsCollector) Metrics(endpoint string) *CallMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.metrics[endpoint]
	if !ok {
		return nil
	}

	snapshot := *entry

	return &snapshot
}

// MetricsInterceptor records statistics for every completed exchange.
func MetricsInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
		endpoint := req.Method + " " + req.Path

		collector.mu.Lock()
		defer collector.mu.Unlock()

		entry, ok := collector.metrics[endpoint]
		if !ok {
			entry = &CallMetrics{}
			collector.metrics[endpoint] = entry
		}

		entry.TotalRequests++
		entry.TotalLatency += resp.Duration

		if resp.Err != nil || resp.StatusCode >= http.StatusBadRequest {
			entry.TotalErrors++
		}

		return nil
	}
}

// CircuitBreaker trips after consecutive server faults and recovers through
// a half-open probe.
type CircuitBreaker struct {
	mu          sync.Mutex
	threshold   int
	cooldown    time.Duration
	failures    int
	open        bool
	lastFailure time.Time
}

// NewCircuitBreaker creates a breaker that opens after threshold consecutive
// failures and probes again after cooldown.
func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	return &CircuitBreaker{threshold: threshold, cooldown: cooldown}
}

// BreakerRequestInterceptor rejects requests while the breaker is open.
func BreakerRequestInterceptor(breaker *CircuitBreaker) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		breaker.mu.Lock()
		defer breaker.mu.Unlock()

		if breaker.open {
			if time.Since(breaker.lastFailure) < breaker.cooldown {
				return ErrCircuitBreakerOpen
			}

			// Half-open: let one request through to probe.
			breaker.open = false
			breaker.failures = breaker.threshold - 1
		}

		return nil
	}
}

// BreakerResponseInterceptor feeds exchange outcomes into the breaker.
func BreakerResponseInterceptor(breaker *CircuitBreaker) ResponseInterceptor {
	return func(ctx context.Context, req *RequestInfo, resp *ResponseInfo) error {
		breaker.mu.Lock()
		defer breaker.mu.Unlock()

		if resp.Err != nil || resp.StatusCode >= http.StatusInternalServerError {
			breaker.failures++
			breaker.lastFailure = time.Now()

			if breaker.failures >= breaker.threshold {
				breaker.open = true
			}

			return nil
		}

		breaker.failures = 0

		return nil
	}
}
