// Package alloc provides storage strategies for vec.Vector.
//
// # Overview
//
// An allocation strategy hands out raw blocks of element slots and takes them
// back. It never constructs or destroys elements: a block returned by Allocate
// holds zero values, and whatever the container left in a block is its own
// business by the time Deallocate is called.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(n): Return a block of exactly n zero-valued slots
//   - Deallocate(block): Release a block previously returned by Allocate
//   - Name(): Strategy name used in trace output
//
// Allocate(0) returns a nil block and Deallocate(nil) is a no-op, so callers
// never need to special-case empty storage.
//
// # Implementations
//
// Heap: Plain Go heap allocation
//
//   - Stateless, zero value ready to use
//   - Deallocate drops the block and lets the collector reclaim it
//
// Pool: Size-class recycling
//
//   - Power-of-two size classes backed by sync.Pool
//   - Blocks are cleared before they are handed out again
//   - The zero value behaves like Heap; use NewPool to enable recycling
//
// Mmap: Anonymous memory mappings (linux, darwin, freebsd)
//
//   - Storage lives outside the Go heap
//   - Only element types without Go pointers are accepted (ErrPointerElem)
//   - Other platforms fall back to heap allocation
//
// Counted and Limited are wrappers around any other Allocator:
//
//   - Counted records allocations, frees and live bytes in a shared *Stats
//   - Limited enforces a byte budget and fails with ErrOutOfMemory past it
//
// # Usage Example
//
//	a := alloc.Count[int](alloc.NewPool[int]())
//	block, err := a.Allocate(16)
//	if err != nil {
//	    return err
//	}
//	defer a.Deallocate(block)
//
//	fmt.Println(a.Stats.LiveBytes()) // 128 on 64-bit platforms
//
// # Failure
//
// Allocation failure is reported as an error wrapping ErrOutOfMemory. Requests
// whose byte size overflows int are rejected the same way. No strategy retries.
//
// # Thread Safety
//
// Heap, Pool and Mmap are safe for concurrent use. Counted and Limited are safe
// for concurrent use when their inner allocator is.
package alloc
