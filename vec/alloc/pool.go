package alloc

import "sync"

// Pool recycles blocks through power-of-two size classes.
//
// A block handed out for n slots has len n and a capacity equal to its class
// size; Deallocate returns the full-capacity block to its class after clearing
// it, so the next Allocate from that class again sees zero values.
//
// Copies of a Pool share the same classes. The zero value has no classes and
// behaves like Heap.
type Pool[T any] struct {
	classes *poolClasses[T]
}

type poolClasses[T any] struct {
	pools [numClasses]sync.Pool
}

// NewPool creates a Pool with empty size classes.
func NewPool[T any]() Pool[T] {
	return Pool[T]{classes: &poolClasses[T]{}}
}

// Allocate returns a zeroed block of n slots, reusing a released block of the
// same class when one is available.
func (p Pool[T]) Allocate(n int) ([]T, error) {
	if err := checkRequest[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if p.classes == nil {
		return make([]T, n), nil
	}

	cls := sizeClass(n)
	if cls == numClasses {
		return make([]T, n), nil
	}
	if v, ok := p.classes.pools[cls].Get().(*[]T); ok {
		return (*v)[:n], nil
	}
	return make([]T, n, classCap(cls)), nil
}

// Deallocate clears block and returns it to its size class. Blocks that did not
// come from a class (oversized or foreign) are dropped.
func (p Pool[T]) Deallocate(block []T) {
	if block == nil || p.classes == nil {
		return
	}
	full := block[:cap(block)]
	cls := sizeClass(len(full))
	if cls == numClasses || classCap(cls) != len(full) {
		return
	}
	clear(full)
	p.classes.pools[cls].Put(&full)
}

// Name returns "pool".
func (p Pool[T]) Name() string { return "pool" }

// Compile-time interface check
var _ Allocator[int] = Pool[int]{}
