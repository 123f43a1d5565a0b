//go:build !linux && !darwin && !freebsd

package alloc

import (
	"fmt"
	"reflect"
)

// Mmap falls back to heap allocation where anonymous mappings are not wired up.
// Element types are validated the same way as on mapping platforms so code
// behaves identically everywhere.
type Mmap[T any] struct{}

// Allocate returns a zeroed heap block of n slots.
func (Mmap[T]) Allocate(n int) ([]T, error) {
	if err := checkRequest[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if hasPointers(reflect.TypeFor[T]()) {
		return nil, fmt.Errorf("%w: %s", ErrPointerElem, reflect.TypeFor[T]())
	}
	return make([]T, n), nil
}

// Deallocate is a no-op.
func (Mmap[T]) Deallocate([]T) {}

// Name returns "mmap".
func (Mmap[T]) Name() string { return "mmap" }

// Compile-time interface check
var _ Allocator[int] = Mmap[int]{}
