package treebuf

// View is a read-only access handle over a node's storage, valid for the
// duration of one Read or Update call. Slices returned by a view are
// borrowed: they alias the storage and must not escape the call, and must
// not be written through.
type View[K, V any] struct {
	s *storage[K, V]
}

// Len returns the number of live (key, value) pairs.
func (v View[K, V]) Len() int { return v.s.count }

// Cap returns the fixed storage capacity.
func (v View[K, V]) Cap() int { return v.s.capacity() }

// Total returns the element count of this node plus its entire subtree.
func (v View[K, V]) Total() int { return v.s.total }

// IsLeaf reports whether the storage has no child buffer.
func (v View[K, V]) IsLeaf() bool { return v.s.isLeaf() }

// Keys is the live key prefix, i.e. slots [0,Len()).
func (v View[K, V]) Keys() []K { return v.s.keys.Slots()[:v.s.count] }

// Values is the live value prefix, parallel to Keys.
func (v View[K, V]) Values() []V { return v.s.vals.Slots()[:v.s.count] }

// Children is the live child prefix, slots [0,Len()+1). Nil for leaves.
// The handles are borrowed; callers wanting to keep one must Clone it.
func (v View[K, V]) Children() []Node[K, V] {
	if v.s.kids == nil {
		return nil
	}
	return v.s.kids.Slots()[:v.s.count+1]
}

// Key returns the key in live slot i.
func (v View[K, V]) Key(i int) K {
	assert(i >= 0 && i < v.s.count, "treebuf: key index out of live range")
	return v.s.keys.Slots()[i]
}

// Value returns the value in live slot i.
func (v View[K, V]) Value(i int) V {
	assert(i >= 0 && i < v.s.count, "treebuf: value index out of live range")
	return v.s.vals.Slots()[i]
}

// Child returns a borrowed handle for live child slot i.
func (v View[K, V]) Child(i int) Node[K, V] {
	assert(v.s.kids != nil, "treebuf: leaf node has no children")
	assert(i >= 0 && i <= v.s.count, "treebuf: child index out of live range")
	return v.s.kids.Slots()[i]
}

// MutView is the mutable access handle passed to an Update body. Its
// backing storage is guaranteed to have exactly one owner, so writes
// through it cannot be observed through any other node handle.
//
// The *Store accessors expose the full-capacity slot arrays; the live
// prefixes inherited from View stay consistent only after SetLen. The body
// is responsible for restoring the storage invariants before it returns.
type MutView[K, V any] struct {
	View[K, V]
}

// KeyStore exposes all capacity key slots for writing.
func (m MutView[K, V]) KeyStore() []K { return m.s.keys.Slots() }

// ValueStore exposes all capacity value slots for writing.
func (m MutView[K, V]) ValueStore() []V { return m.s.vals.Slots() }

// ChildStore exposes all capacity+1 child slots for writing. Nil for
// leaves. Writing a handle into a slot transfers the handle's storage
// reference to this node; clearing a live slot requires the caller to
// first move or Release the handle held there.
func (m MutView[K, V]) ChildStore() []Node[K, V] {
	if m.s.kids == nil {
		return nil
	}
	return m.s.kids.Slots()
}

// SetLen sets the live element count.
func (m MutView[K, V]) SetLen(count int) { m.s.count = count }

// SetTotal sets the subtree element count.
func (m MutView[K, V]) SetTotal(total int) { m.s.total = total }
