package vec

import "errors"

var (
	// ErrIndexOutOfRange indicates a checked access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrInvalidSize indicates a negative element count.
	ErrInvalidSize = errors.New("vec: invalid size")

	// ErrShortBlock indicates an allocator returned a block of the wrong length.
	ErrShortBlock = errors.New("vec: allocator returned a block of the wrong length")
)
