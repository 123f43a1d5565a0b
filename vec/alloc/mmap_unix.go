//go:build linux || darwin || freebsd

package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap allocates each block as a private anonymous mapping outside the Go heap.
//
// The collector does not scan mapped memory, so element types containing Go
// pointers (strings, slices, maps, interfaces, pointers) are rejected with
// ErrPointerElem. Zero-sized element types are served from the heap.
type Mmap[T any] struct{}

// Allocate maps a zero-filled region large enough for n slots.
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

	size := Bytes[T](n)
	if size == 0 {
		return make([]T, n), nil
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, size, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), n), nil
}

// Deallocate unmaps block. Blocks not produced by Allocate must not be passed.
func (Mmap[T]) Deallocate(block []T) {
	if cap(block) == 0 {
		return
	}
	size := Bytes[T](cap(block))
	if size <= 0 {
		return
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), size)
	// Munmap only fails for regions it did not map; nothing to recover.
	_ = unix.Munmap(mem)
}

// Name returns "mmap".
func (Mmap[T]) Name() string { return "mmap" }

// Compile-time interface check
var _ Allocator[int] = Mmap[int]{}
