// Package fanout runs one function across many items with bounded
// concurrency, keeping results in input order. funnelctl uses it to move a
// batch of companies through the funnel in one command.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
// A maxWorkers below 1 is treated as 1.
//
// One item's failure does not stop the others. Items that have not started
// when ctx is canceled record ctx.Err() without calling fn; items already
// running are expected to observe ctx themselves.
//
// If items is empty, Run returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		// Go blocks until a worker slot frees up.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Join combines the failed results into one error, prefixing each with the
// label of its item. Returns nil when every item succeeded.
func Join[T, R any](items []T, results []Result[R], label func(T) string) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label(items[i]), r.Err))
		}
	}
	return errors.Join(errs...)
}
