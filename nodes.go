package treebuf

import (
	"github.com/npillmayer/treebuf/buffer"
)

// storage is one node allocation: header fields plus owned key/value/child
// buffers. The buffers share the storage's lifetime and are created and
// disposed together.
//
// The embedded RefCount counts Node handles (and child slots of parent
// storages) referencing this storage. A shape — leaf or internal — is
// chosen at allocation and never changes; growing a leaf into an internal
// node requires a fresh storage.
type storage[K, V any] struct {
	buffer.RefCount
	// count is the number of live (key, value) pairs; valid slots are
	// keys[:count] and vals[:count].
	count int
	// total is the element count of this node plus its entire descendant
	// subtree. For a leaf, total == count.
	total int
	keys  *buffer.Buf[K]          // capacity slots
	vals  *buffer.Buf[V]          // capacity slots
	kids  *buffer.Buf[Node[K, V]] // capacity+1 slots; nil iff leaf
}

// allocStorage creates empty storage of fixed capacity and shape.
//
// Allocation failure is fatal at this layer; there is no partially
// allocated storage observable afterwards.
func allocStorage[K, V any](capacity int, leaf bool) *storage[K, V] {
	assert(capacity > 0, "treebuf: node capacity must be positive")
	keys, err := buffer.Alloc[K](capacity)
	assert(err == nil, "treebuf: cannot allocate key buffer")
	vals, err := buffer.Alloc[V](capacity)
	assert(err == nil, "treebuf: cannot allocate value buffer")
	s := &storage[K, V]{keys: keys, vals: vals}
	if !leaf {
		kids, kerr := buffer.Alloc[Node[K, V]](capacity + 1)
		assert(kerr == nil, "treebuf: cannot allocate child buffer")
		s.kids = kids
	}
	s.Init()
	return s
}

func (s *storage[K, V]) capacity() int {
	return s.keys.Cap()
}

func (s *storage[K, V]) isLeaf() bool {
	return s.kids == nil
}

// clone creates a storage with an identical header and the live slot
// prefixes copied over. Child slots copy the child *references* only, each
// retained individually; child subtrees stay shared until their own
// mutation diverges them. Cost is O(capacity), independent of subtree size.
func (s *storage[K, V]) clone() *storage[K, V] {
	c := allocStorage[K, V](s.capacity(), s.isLeaf())
	c.count = s.count
	c.total = s.total
	copy(c.keys.Slots()[:s.count], s.keys.Slots()[:s.count])
	copy(c.vals.Slots()[:s.count], s.vals.Slots()[:s.count])
	if s.kids != nil {
		src := s.kids.Slots()[:s.count+1]
		dst := c.kids.Slots()
		for i, kid := range src {
			if kid.s != nil {
				kid.s.Retain()
			}
			dst[i] = kid
		}
	}
	return c
}

// release drops one reference to the storage. The last reference disposes
// the owned buffers and releases every live child reference; child
// storages are freed recursively when theirs was the last one.
func (s *storage[K, V]) release() {
	if !s.Release() {
		return
	}
	s.vals.Release()
	if s.kids != nil {
		for _, kid := range s.kids.Slots()[:s.count+1] {
			if kid.s != nil {
				kid.s.release()
			}
		}
		s.kids.Release()
	}
	s.keys.Release()
}
