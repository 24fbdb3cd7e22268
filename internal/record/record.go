package record

import (
	"errors"
	"fmt"
)

// ErrAllocation means the allocator could not provide backing storage.
var ErrAllocation = errors.New("record backing storage unavailable")

// Record is the program's only entity.
type Record struct {
	ID   int
	Name BoundedName
}

// Allocator hands out and takes back Record storage.
type Allocator interface {
	Acquire() (*Record, error)
	Release(r *Record)
}

// HeapAllocator always succeeds.
type HeapAllocator struct{}

// Acquire returns a zeroed Record.
func (HeapAllocator) Acquire() (*Record, error) {
	return &Record{}, nil
}

// Release clears the record so stale data cannot be read after release.
func (HeapAllocator) Release(r *Record) {
	if r != nil {
		*r = Record{}
	}
}

// FailingAllocator never provides storage. Used to drive the failure path.
type FailingAllocator struct {
	// Reason is appended to ErrAllocation when set.
	Reason string
}

// Acquire always fails with an error wrapping ErrAllocation.
func (a FailingAllocator) Acquire() (*Record, error) {
	if a.Reason != "" {
		return nil, fmt.Errorf("%w: %s", ErrAllocation, a.Reason)
	}
	return nil, ErrAllocation
}

// Release is a no-op; nothing was ever handed out.
func (FailingAllocator) Release(*Record) {}

// Tracking wraps an Allocator and counts calls.
//
// Not safe for concurrent use; the program is single-threaded.
type Tracking struct {
	Allocator Allocator
	Acquired  int
	Released  int
}

// NewTracking wraps a.
func NewTracking(a Allocator) *Tracking {
	return &Tracking{Allocator: a}
}

// Acquire delegates and counts successful acquisitions.
func (t *Tracking) Acquire() (*Record, error) {
	r, err := t.Allocator.Acquire()
	if err != nil {
		return nil, err
	}
	t.Acquired++
	return r, nil
}

// Release delegates and counts.
func (t *Tracking) Release(r *Record) {
	t.Released++
	t.Allocator.Release(r)
}

// Outstanding returns acquisitions not yet released.
func (t *Tracking) Outstanding() int {
	return t.Acquired - t.Released
}

// With acquires a Record, calls fn and releases the record when fn
// returns or panics. If acquisition fails fn is not called and the
// returned error wraps ErrAllocation.
func With(alloc Allocator, fn func(r *Record) error) error {
	r, err := alloc.Acquire()
	if err != nil {
		return fmt.Errorf("acquire record: %w", err)
	}
	defer alloc.Release(r)

	return fn(r)
}
