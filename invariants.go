package treebuf

import "fmt"

// check validates the invariants that must hold whenever a caller observes
// the node, i.e. outside an in-progress mutation. It inspects cached child
// totals only and never recurses, so an Update pays O(capacity) here.
func (s *storage[K, V]) check() error {
	if s.count < 0 || s.count > s.capacity() {
		return fmt.Errorf("%w: count %d outside [0,%d]",
			ErrInvariantViolated, s.count, s.capacity())
	}
	if s.kids == nil {
		if s.total != s.count {
			return fmt.Errorf("%w: leaf total %d != count %d",
				ErrInvariantViolated, s.total, s.count)
		}
		return nil
	}
	slots := s.kids.Slots()
	sum := s.count
	for i := 0; i <= s.count; i++ {
		if slots[i].s == nil {
			return fmt.Errorf("%w: void child in slot %d, internal node needs %d live children",
				ErrInvariantViolated, i, s.count+1)
		}
		sum += slots[i].s.total
	}
	// Vacated slots must be cleared; a stale handle here is a leaked
	// reference waiting to happen.
	for i := s.count + 1; i < len(slots); i++ {
		if slots[i].s != nil {
			return fmt.Errorf("%w: stale child in slot %d past live prefix of %d",
				ErrInvariantViolated, i, s.count+1)
		}
	}
	if s.total != sum {
		return fmt.Errorf("%w: total %d != count plus child totals %d",
			ErrInvariantViolated, s.total, sum)
	}
	return nil
}

// Check validates the entire subtree below n: per-storage invariants,
// uniform subtree depth, and bottom-up recomputed totals.
//
// This checker is intentionally strict and meant for tests and debugging
// in the tree-algorithm layer; the per-update enforcement inside Update is
// the cheap, non-recursive variant.
func (n Node[K, V]) Check() error {
	if n.s == nil {
		return nil
	}
	_, _, err := checkSubtree(n.s)
	return err
}

func checkSubtree[K, V any](s *storage[K, V]) (elements int, depth int, err error) {
	if err := s.check(); err != nil {
		return 0, 0, err
	}
	if s.kids == nil {
		return s.count, 1, nil
	}
	sum := s.count
	var childDepth int
	for i := 0; i <= s.count; i++ {
		kid := s.kids.Slots()[i]
		cElems, cDepth, cErr := checkSubtree(kid.s)
		if cErr != nil {
			return 0, 0, cErr
		}
		sum += cElems
		if i == 0 {
			childDepth = cDepth
		} else if cDepth != childDepth {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree depths below internal node",
				ErrInvariantViolated)
		}
	}
	if sum != s.total {
		return 0, 0, fmt.Errorf("%w: deep total mismatch (%d != %d)",
			ErrInvariantViolated, s.total, sum)
	}
	return sum, childDepth + 1, nil
}
