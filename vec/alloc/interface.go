package alloc

// Allocator supplies uninitialized storage for elements of type T.
//
// Implementations:
//   - Heap: Go heap, stateless
//   - Pool: size-class recycling on sync.Pool
//   - Mmap: anonymous mappings outside the Go heap
//   - Counted, Limited: wrappers around another Allocator
type Allocator[T any] interface {
	// Allocate returns a block with len == n whose slots hold zero values.
	// n == 0 returns a nil block. Failure wraps ErrOutOfMemory.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate on an
	// allocator of the same type. A nil block is a no-op.
	Deallocate(block []T)

	// Name identifies the strategy in trace output.
	Name() string
}
