package alloc

// Heap allocates blocks on the Go heap. Deallocate drops the block and leaves
// reclamation to the collector.
type Heap[T any] struct{}

// Allocate returns a zeroed block of n slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if err := checkRequest[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the block becomes garbage once the caller drops it.
func (Heap[T]) Deallocate([]T) {}

// Name returns "heap".
func (Heap[T]) Name() string { return "heap" }

// Compile-time interface check
var _ Allocator[int] = Heap[int]{}
