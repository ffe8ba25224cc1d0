package treebuf

import "errors"

var (
	// ErrVoidNode signals an operation on a node handle without storage.
	ErrVoidNode = errors.New("treebuf: void node handle")
	// ErrInvariantViolated marks storage invariant failures detected at the
	// end of an Update. It is carried inside the panic raised there and by
	// the errors returned from Check.
	ErrInvariantViolated = errors.New("treebuf: storage invariant violated")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
