package cfapi

import (
	"context"
)

// PageFetcher issues the request for one offset-paginated page and returns
// the page's items plus the pagination metadata from its envelope.
type PageFetcher[T any] func(ctx context.Context, page, perPage int) ([]T, *PageInfo, error)

// CursorFetcher issues the request for one cursor-paginated page. The cursor
// is empty on the first call; the caller's domain filters must be closed over
// by the fetcher so they are carried unchanged into every page's request.
type CursorFetcher[T any] func(ctx context.Context, cursor string) ([]T, *CursorInfo, error)

// Iterator lazily walks a paginated result set. It is forward-only and not
// restartable; every page re-issues the underlying request, and no request is
// issued ahead of consumption. A failure mid-sequence is surfaced from the
// in-progress step rather than silently truncating the sequence.
type Iterator[T any] struct {
	ctx     context.Context
	advance func(ctx context.Context) ([]T, bool, error)
	buf     []T
	more    bool
	err     error
}

// NewPageIterator creates an iterator over an offset-paginated endpoint.
// Iteration starts at page 1 and stops once the just-received metadata
// reports page >= total_pages, so a single-page result issues exactly one
// request. perPage <= 0 leaves the server default in place.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T], perPage int) *Iterator[T] {
	page := 1

	return &Iterator[T]{
		ctx:  ctx,
		more: true,
		advance: func(ctx context.Context) ([]T, bool, error) {
			items, info, err := fetch(ctx, page, perPage)
			if err != nil {
				return nil, false, err
			}

			if info == nil || page >= info.TotalPages {
				return items, false, nil
			}

			page++

			return items, true, nil
		},
	}
}

// NewCursorIterator creates an iterator over a cursor-paginated endpoint.
// The absence of a returned cursor is the sole termination signal.
func NewCursorIterator[T any](ctx context.Context, fetch CursorFetcher[T]) *Iterator[T] {
	cursor := ""

	return &Iterator[T]{
		ctx:  ctx,
		more: true,
		advance: func(ctx context.Context) ([]T, bool, error) {
			items, info, err := fetch(ctx, cursor)
			if err != nil {
				return nil, false, err
			}

			if info == nil || info.Cursor == nil || *info.Cursor == "" {
				return items, false, nil
			}

			cursor = *info.Cursor

			return items, true, nil
		},
	}
}

// fill buffers the next non-empty page. It stops issuing requests once the
// context is canceled, but a failure already recorded is never suppressed.
func (it *Iterator[T]) fill() {
	for len(it.buf) == 0 && it.more && it.err == nil {
		if err := it.ctx.Err(); err != nil {
			it.more = false
			it.err = err

			return
		}

		items, more, err := it.advance(it.ctx)
		if err != nil {
			it.more = false
			it.err = err

			return
		}

		it.buf = items
		it.more = more
	}
}

// HasNext reports whether Next will produce another item or a pending error.
// It may fetch the next page to find out.
func (it *Iterator[T]) HasNext() bool {
	it.fill()

	return len(it.buf) > 0 || it.err != nil
}

// Next returns the next item. When the sequence is exhausted it returns
// ErrNoMoreItems; a transport, business, or decode failure from the
// in-progress step is returned as-is.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	it.fill()

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	if len(it.buf) == 0 {
		return zero, ErrNoMoreItems
	}

	item := it.buf[0]
	it.buf = it.buf[1:]

	return item, nil
}

// NextPage returns the next page of items as one batch, or (nil, nil) when
// the sequence is exhausted.
func (it *Iterator[T]) NextPage() ([]T, error) {
	it.fill()

	if it.err != nil {
		err := it.err
		it.err = nil

		return nil, err
	}

	page := it.buf
	it.buf = nil

	return page, nil
}

// All drains the iterator into a slice.
func (it *Iterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item. The first error, whether from
// the iteration or from fn, stops the walk; no further page is requested.
func (it *Iterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// PageResult is one page batch from StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages drives the iterator page-by-page over an unbuffered channel.
// The next page is not fetched until the previous batch has been received,
// keeping the prefetch depth at exactly one. The channel closes after the
// final page, the first error, or context cancellation.
func StreamPages[T any](ctx context.Context, it *Iterator[T]) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		for {
			page, err := it.NextPage()
			if err == nil && len(page) == 0 {
				return
			}

			select {
			case results <- PageResult[T]{Items: page, Err: err}:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}
		}
	}()

	return results
}
