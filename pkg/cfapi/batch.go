package cfapi

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Alos-no/cfapi/internal/constants"
)

// ErrNilBatchOperation is recorded for a batch entry with no Do func.
var ErrNilBatchOperation = errors.New("batch operation has no Do func")

// BatchOperation is a single unit of work in a batch. Do carries the actual
// API call; the executor supplies the context, bounded by the batch timeout.
type BatchOperation struct {
	ID       string
	Do       func(ctx context.Context) (interface{}, error)
	Callback func(result *BatchResult)
}

// BatchResult is the outcome of one batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Err      error
	Duration time.Duration
}

// BatchExecutor runs independent API operations concurrently, bounded by a
// concurrency limit and a per-operation timeout. Operations must not depend
// on each other's results; there is no ordering between them.
type BatchExecutor struct {
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates an executor running at most concurrency
// operations at once. A non-positive concurrency defaults to 5.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = 5
	}

	return &BatchExecutor{
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs all operations and returns their results in operation order.
// Individual failures are recorded in the corresponding result, never
// returned as an error; callers inspect Success per entry.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	if operation.Do == nil {
		result.Err = ErrNilBatchOperation

		return result
	}

	data, err := operation.Do(ctx)
	result.Success = err == nil
	result.Data = data
	result.Err = err

	return result
}
