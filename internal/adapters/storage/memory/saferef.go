package memory

import "sync"

// safeRef guards a single mutable record. Reads take a shared lock; Update
// runs fn under the exclusive lock so check-and-set is atomic per record.
type safeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

func newRef[T any](val T) *safeRef[T] {
	return &safeRef[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (r *safeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Update applies fn to the value under a write lock. The value is only
// replaced when fn returns nil.
func (r *safeRef[T]) Update(fn func(*T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.val
	if err := fn(&next); err != nil {
		return err
	}
	r.val = next
	return nil
}
