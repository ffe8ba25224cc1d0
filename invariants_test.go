package treebuf

import (
	"errors"
	"strings"
	"testing"
)

// expectInvariantPanic runs fn and asserts that it panics with an
// ErrInvariantViolated error whose text contains fragment.
func expectInvariantPanic(t *testing.T, fragment string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected invariant panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvariantViolated) {
			t.Fatalf("unexpected panic value: %v", r)
		}
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("unexpected invariant message: %v", err)
		}
	}()
	fn()
}

func TestUpdatePanicsOnCountOverflow(t *testing.T) {
	n := makeLeaf(t, 2, 1, 2)
	expectInvariantPanic(t, "outside", func() {
		_ = n.Update(func(m MutView[int, string]) error {
			m.SetLen(3)
			m.SetTotal(3)
			return nil
		})
	})
}

func TestUpdatePanicsOnLeafTotalMismatch(t *testing.T) {
	n := Alloc[int, string](4, true)
	expectInvariantPanic(t, "leaf total", func() {
		_ = n.Update(func(m MutView[int, string]) error {
			m.SetTotal(5)
			return nil
		})
	})
}

func TestUpdatePanicsOnMissingChild(t *testing.T) {
	n := Alloc[int, string](4, false)
	expectInvariantPanic(t, "void child", func() {
		_ = n.Update(func(m MutView[int, string]) error {
			m.KeyStore()[0] = 1
			m.ValueStore()[0] = "1"
			m.SetLen(1)
			m.SetTotal(1)
			return nil
		})
	})
}

func TestUpdatePanicsOnStaleChildSlot(t *testing.T) {
	c1 := makeLeaf(t, 4, 1)
	c2 := makeLeaf(t, 4, 3)
	p := makeInternal(t, 4, []int{2}, c1, c2)
	expectInvariantPanic(t, "stale child", func() {
		// Shrink to zero separators without clearing the vacated slot.
		_ = p.Update(func(m MutView[int, string]) error {
			m.SetLen(0)
			m.SetTotal(1)
			return nil
		})
	})
}

func TestUpdatePanicsOnInternalTotalMismatch(t *testing.T) {
	c1 := makeLeaf(t, 4, 1)
	c2 := makeLeaf(t, 4, 3)
	p := makeInternal(t, 4, []int{2}, c1, c2)
	expectInvariantPanic(t, "child totals", func() {
		_ = p.Update(func(m MutView[int, string]) error {
			m.SetTotal(17)
			return nil
		})
	})
}

func TestUpdateChecksEvenWhenBodyPanics(t *testing.T) {
	n := makeLeaf(t, 2, 1, 2)
	expectInvariantPanic(t, "outside", func() {
		_ = n.Update(func(m MutView[int, string]) error {
			m.SetLen(5)
			panic("tree layer blew up")
		})
	})
}

func TestBodyPanicPropagatesWhenInvariantsHold(t *testing.T) {
	n := makeLeaf(t, 2, 1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected body panic to propagate")
		}
		if s, ok := r.(string); !ok || s != "tree layer blew up" {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	_ = n.Update(func(m MutView[int, string]) error {
		panic("tree layer blew up")
	})
}

func TestCheckValidatesWholeSubtree(t *testing.T) {
	c1 := makeLeaf(t, 4, 1)
	c2 := makeLeaf(t, 4, 3)
	p := makeInternal(t, 4, []int{2}, c1, c2)
	if err := p.Check(); err != nil {
		t.Fatalf("expected valid tree, got %v", err)
	}
	// Corrupt a child's cached total behind the protocol's back.
	p.s.kids.Slots()[0].s.total = 9
	err := p.Check()
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected invariant error for corrupted child total, got %v", err)
	}
}

func TestCheckDetectsNonUniformDepth(t *testing.T) {
	shallow := makeLeaf(t, 4, 1)
	grandchild := makeLeaf(t, 4, 5)
	deep := makeInternal(t, 4, nil, grandchild)
	p := makeInternal(t, 4, []int{2}, shallow, deep)
	err := p.Check()
	if err == nil || !strings.Contains(err.Error(), "non-uniform") {
		t.Fatalf("expected non-uniform depth error, got %v", err)
	}
}

func TestCheckOnVoidHandle(t *testing.T) {
	var n Node[int, string]
	if err := n.Check(); err != nil {
		t.Fatalf("void handle should check clean, got %v", err)
	}
}
