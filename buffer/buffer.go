package buffer

import "sync/atomic"

// RefCount is an atomic share counter for a buffer or any other resource
// with explicit ownership. The zero value is dead; Init creates the first
// reference.
//
// All operations are race-free with respect to concurrent Retain/Release
// on other references to the same resource.
type RefCount struct {
	refs atomic.Int32
}

// Init establishes the first reference.
func (rc *RefCount) Init() {
	rc.refs.Store(1)
}

// Retain acquires an additional reference.
func (rc *RefCount) Retain() {
	rc.refs.Add(1)
}

// Release drops one reference and reports whether it was the last one.
// The owner of the last reference is responsible for disposing the
// resource. Releasing a dead reference is a programmer error.
func (rc *RefCount) Release() bool {
	n := rc.refs.Add(-1)
	if n < 0 {
		panic("buffer: release of dead reference")
	}
	return n == 0
}

// Unique reports whether the current reference is the sole owner.
//
// A true result is only stable if the caller holds one of the references:
// no other party can then concurrently create a second one.
func (rc *RefCount) Unique() bool {
	return rc.refs.Load() == 1
}

// Refs returns the current reference count, for diagnostics and tests.
func (rc *RefCount) Refs() int32 {
	return rc.refs.Load()
}

// Buf is a reference-counted, fixed-capacity slot array. The slot count is
// set once at allocation and never changes for the life of the buffer.
type Buf[T any] struct {
	RefCount
	slots []T
}

// Alloc creates a buffer with capacity slots and one reference.
func Alloc[T any](capacity int) (*Buf[T], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	b := &Buf[T]{slots: make([]T, capacity)}
	b.Init()
	return b, nil
}

// Slots exposes the raw slot array over the full capacity. Callers are
// responsible for tracking which slots hold live content.
func (b *Buf[T]) Slots() []T {
	return b.slots
}

// Cap returns the fixed slot capacity.
func (b *Buf[T]) Cap() int {
	return len(b.slots)
}
