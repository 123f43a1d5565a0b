package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that a block could not be allocated.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrPointerElem indicates an element type holding Go pointers was given to an
	// allocator whose storage the garbage collector cannot scan.
	ErrPointerElem = errors.New("alloc: element type contains pointers")
)
