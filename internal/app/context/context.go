// Package appctx provides the request-scoped unit of work used by the
// company service.
//
// A RequestContext memoizes reads and queues write steps. Commit runs the
// steps in order and rolls completed ones back in reverse when a later step
// fails:
//
//	rc := appctx.New(ctx)
//
//	c, err := appctx.GetOrFetch(rc, "company:7", fetchCompany)
//
//	rc.AddStep(&updateStageStep{...})
//	rc.AddStep(&appendEventStep{...})
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyCommitted is returned when AddStep or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilStep is returned when a nil Step is passed to AddStep.
var ErrNilStep = errors.New("appctx: nil step")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped context wrapper providing in-memory
// caching and staged step execution. It embeds context.Context.
//
// Create a new instance for each operation; it must not outlive it.
type RequestContext struct {
	context.Context

	mu        sync.Mutex
	cache     map[string]cacheEntry
	steps     []stepItem
	committed bool
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// The fetch runs without holding the cache lock.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()
	return val, err
}

// Put replaces the cached value for key, so later GetOrFetch calls observe
// a value written during the request.
func (rc *RequestContext) Put(key string, value any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache[key] = cacheEntry{value: value}
}
