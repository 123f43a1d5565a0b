package vec

import (
	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/lock"
	"github.com/joshuapare/policyvec/vec/trace"
)

// Local is a heap-backed, single-threaded, untraced Vector.
type Local[T any] = Vector[T, lock.None, *lock.None, alloc.Heap[T], trace.Discard]

// Shared is a heap-backed, mutex-guarded, untraced Vector.
type Shared[T any] = Vector[T, lock.Mutex, *lock.Mutex, alloc.Heap[T], trace.Discard]

// NewLocal creates an empty Local vector.
func NewLocal[T any]() *Local[T] {
	return New[T, lock.None](alloc.Heap[T]{}, trace.Discard{})
}

// NewShared creates an empty Shared vector.
func NewShared[T any]() *Shared[T] {
	return New[T, lock.Mutex](alloc.Heap[T]{}, trace.Discard{})
}
