package treebuf

// Node is a thin, copyable handle onto one node storage. Several handles
// may reference the same storage at once; aliasing is sharing, not an
// error. A handle behaves like an independent value to its caller: Update
// establishes unique ownership of the storage before any write.
//
// The zero value is a void handle without storage.
//
// Handles carry an ownership obligation: every handle obtained from Alloc
// or Clone must eventually be dropped with Release (or have its reference
// transferred into a parent's child slot). Plain struct assignment does not
// acquire a reference and must not be used to duplicate a handle.
type Node[K, V any] struct {
	s *storage[K, V]
}

// Alloc creates a node over fresh, empty storage of the given capacity.
// The leaf/internal shape is fixed for the storage's lifetime.
func Alloc[K, V any](capacity int, leaf bool) Node[K, V] {
	return Node[K, V]{s: allocStorage[K, V](capacity, leaf)}
}

// Clone returns a new handle sharing this node's storage.
//
// Storage contents are shared intentionally; a later Update on either
// handle will copy the storage before writing (copy-on-write).
func (n *Node[K, V]) Clone() Node[K, V] {
	if n.s == nil {
		return Node[K, V]{}
	}
	n.s.Retain()
	return Node[K, V]{s: n.s}
}

// Release drops this handle's storage reference and voids the handle.
// Releasing a void handle is a no-op.
func (n *Node[K, V]) Release() {
	if n.s == nil {
		return
	}
	n.s.release()
	n.s = nil
}

// Same reports whether two handles reference the identical storage.
//
// Equality is identity, never structural: two nodes with element-for-element
// equal contents but separate storage allocations are not Same. Void
// handles are never Same, not even with each other.
func (n Node[K, V]) Same(m Node[K, V]) bool {
	return n.s != nil && n.s == m.s
}

// IsVoid reports whether the handle has no storage.
func (n Node[K, V]) IsVoid() bool {
	return n.s == nil
}

// IsLeaf reports whether the node was allocated without a child buffer.
func (n Node[K, V]) IsLeaf() bool {
	return n.s != nil && n.s.isLeaf()
}

// Refs returns the number of references sharing this node's storage, for
// diagnostics and tests. 0 for a void handle.
func (n Node[K, V]) Refs() int32 {
	if n.s == nil {
		return 0
	}
	return n.s.Refs()
}

// Read grants body a read-only view over the node's current storage for
// the duration of the call. The view must not escape body. Reads of the
// same or aliased storage may run concurrently from multiple goroutines,
// provided no goroutine is concurrently updating that storage.
func (n Node[K, V]) Read(body func(View[K, V]) error) error {
	if n.s == nil {
		return ErrVoidNode
	}
	return body(View[K, V]{s: n.s})
}

// Update grants body a mutable view over storage this handle exclusively
// owns.
//
// If the storage is shared at the moment Update begins, the handle is
// re-seated onto a fresh clone first, so writes can never be observed
// through any other handle. On every exit from body — normal return, error
// return, or panic — the storage invariants are re-checked; a violation is
// a programmer error in the layer above and aborts with a panic naming the
// violated invariant.
//
// The body must leave the storage invariant-satisfying: count within
// capacity, total consistent with count and the live children, and for
// internal nodes exactly count+1 live child slots (vacated slots cleared
// to the void handle).
func (n *Node[K, V]) Update(body func(MutView[K, V]) error) error {
	if n.s == nil {
		return ErrVoidNode
	}
	if !n.s.Unique() {
		T().Debugf("copy-on-write clone of shared node storage, capacity=%d, refs=%d",
			n.s.capacity(), n.s.Refs())
		c := n.s.clone()
		n.s.release()
		n.s = c
	}
	defer func() {
		if err := n.s.check(); err != nil {
			panic(err)
		}
	}()
	return body(MutView[K, V]{View[K, V]{s: n.s}})
}
