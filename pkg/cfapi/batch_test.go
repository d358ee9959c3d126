package cfapi

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchExecutorResultsAlignWithOperations(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	executor := NewBatchExecutor(2)
	results := executor.Execute(context.Background(), []BatchOperation{
		{ID: "first", Do: func(ctx context.Context) (interface{}, error) { return "one", nil }},
		{ID: "second", Do: func(ctx context.Context) (interface{}, error) { return nil, errBoom }},
		{ID: "third", Do: func(ctx context.Context) (interface{}, error) { return "three", nil }},
	})

	require.Len(t, results, 3)

	// Results keep operation order regardless of completion order.
	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
	assert.Equal(t, "third", results[2].ID)

	assert.True(t, results[0].Success)
	assert.Equal(t, "one", results[0].Data)

	assert.False(t, results[1].Success)
	assert.ErrorIs(t, results[1].Err, errBoom)

	assert.True(t, results[2].Success)
}

func TestBatchExecutorBoundsConcurrency(t *testing.T) {
	t.Parallel()

	var inflight, peak atomic.Int32

	operation := func(ctx context.Context) (interface{}, error) {
		current := inflight.Add(1)
		defer inflight.Add(-1)

		for {
			observed := peak.Load()
			if current <= observed || peak.CompareAndSwap(observed, current) {
				break
			}
		}

		time.Sleep(10 * time.Millisecond)

		return nil, nil
	}

	operations := make([]BatchOperation, 8)
	for i := range operations {
		operations[i] = BatchOperation{Do: operation}
	}

	executor := NewBatchExecutor(2)
	executor.Execute(context.Background(), operations)

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestBatchExecutorInvokesCallbacks(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex

	seen := make(map[string]bool)

	executor := NewBatchExecutor(0)
	executor.Execute(context.Background(), []BatchOperation{
		{
			ID: "op-1",
			Do: func(ctx context.Context) (interface{}, error) { return nil, nil },
			Callback: func(result *BatchResult) {
				mu.Lock()
				defer mu.Unlock()

				seen[result.ID] = result.Success
			},
		},
	})

	mu.Lock()
	defer mu.Unlock()

	assert.True(t, seen["op-1"])
}

func TestBatchExecutorPerOperationTimeout(t *testing.T) {
	t.Parallel()

	executor := NewBatchExecutor(1)
	executor.SetTimeout(20 * time.Millisecond)

	results := executor.Execute(context.Background(), []BatchOperation{
		{ID: "slow", Do: func(ctx context.Context) (interface{}, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				return "done", nil
			}
		}},
	})

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
}

func TestBatchExecutorNilDo(t *testing.T) {
	t.Parallel()

	executor := NewBatchExecutor(1)
	results := executor.Execute(context.Background(), []BatchOperation{{ID: "empty"}})

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Err, ErrNilBatchOperation)
}
