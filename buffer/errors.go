package buffer

import "errors"

var (
	// ErrBadCapacity signals a non-positive buffer capacity.
	ErrBadCapacity = errors.New("buffer: capacity must be positive")
)
