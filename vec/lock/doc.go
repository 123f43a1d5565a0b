// Package lock provides concurrency strategies for vec.Vector.
//
// A strategy is a value type L whose pointer *L has Lock and Unlock. The
// container embeds one L by value and calls through *L, so the lock lives
// inside the container and never needs a separate allocation.
//
// # Implementations
//
//   - None: Lock and Unlock do nothing. Valid only when the caller guarantees
//     the container is never used from more than one goroutine at a time.
//   - Mutex: sync.Mutex. Lock blocks until the lock is free. There is no
//     timeout and no cancellation; a critical section that never returns
//     blocks every other caller forever.
//   - Assert: a single-threaded lock that panics with ErrConcurrentUse when two
//     critical sections overlap, for catching misuse of None in tests.
//
// # Pairwise Locking
//
// LockPair and UnlockPair acquire and release two locks in ascending id order.
// Every caller that needs two container locks goes through them, so two
// goroutines copying A into B and B into A at the same time cannot deadlock.
package lock
