// Package vec provides Vector, a growable contiguous sequence whose allocation,
// locking and tracing behavior are chosen independently through type parameters.
//
// # Overview
//
// A Vector composes exactly one strategy of each kind:
//
//   - Allocation (package alloc): where storage blocks come from
//   - Concurrency (package lock): how operations are serialized
//   - Instrumentation (package trace): where operation events go
//
// Strategies are bound at compile time. Any allocator works with any lock and
// any tracer, and none of them changes what the container computes.
//
//	v := vec.New[int, lock.Mutex](alloc.NewPool[int](), trace.NewText(os.Stderr))
//	defer v.Close()
//
//	for i := range 3 {
//	    if err := v.Append(i); err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(v) // [0, 1, 2] (size: 3, capacity: 4)
//
// Local and Shared name the common heap-backed, untraced combinations.
//
// # Growth
//
// Append doubles the capacity when the storage is full, starting from 1:
// 0 -> 1 -> 2 -> 4 -> 8. Reserve(n) grows to exactly n. Growth allocates the
// new block, moves the live elements into it, then releases the old block, so
// an allocation failure leaves the Vector as it was. RemoveLast never shrinks
// the capacity.
//
// # Element Lifecycle
//
// Slots beyond Len hold zero values. Elements implementing Cloner are copied
// with Clone by Clone and CopyFrom; elements implementing Destroyer have
// Destroy called when RemoveLast, CopyFrom, MoveFrom or Close removes them.
// Moving storage (growth, Take, MoveFrom) never calls either hook.
//
// # Index Access
//
// At and Get do not check the index against Len; callers must stay in
// [0, Len()). CheckedAt and Load return ErrIndexOutOfRange instead.
//
// # Thread Safety
//
// Every method runs under the Vector's lock. With lock.Mutex, operations on
// one Vector are linearizable. Clone, CopyFrom, Take and MoveFrom hold both
// Vectors' locks, acquired in instance-creation order, so concurrent copies in
// opposite directions cannot deadlock. With lock.None the caller must
// guarantee single-goroutine use. Lock acquisition has no timeout.
package vec
