package lock

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrConcurrentUse is the panic value raised by Assert when two critical
// sections overlap.
var ErrConcurrentUse = errors.New("lock: concurrent use of single-threaded lock")

// Locker constrains a concurrency strategy: L is stored by value and its
// pointer type provides the lock operations.
type Locker[L any] interface {
	*L
	sync.Locker
}

// None is the single-threaded strategy. Its operations do nothing.
type None struct{}

// Lock does nothing.
func (*None) Lock() {}

// Unlock does nothing.
func (*None) Unlock() {}

// Name returns "single-threaded".
func (*None) Name() string { return "single-threaded" }

// Mutex is the multi-threaded strategy backed by sync.Mutex.
type Mutex struct {
	mu sync.Mutex
}

// Lock blocks until the mutex is available.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// Name returns "multi-threaded".
func (*Mutex) Name() string { return "multi-threaded" }

// Assert is a single-threaded strategy that detects overlapping critical
// sections instead of serializing them. It is not reentrant.
type Assert struct {
	held atomic.Bool
}

// Lock panics with ErrConcurrentUse if another critical section is active.
func (a *Assert) Lock() {
	if !a.held.CompareAndSwap(false, true) {
		panic(ErrConcurrentUse)
	}
}

// Unlock ends the critical section.
func (a *Assert) Unlock() { a.held.Store(false) }

// Name returns "single-threaded-checked".
func (*Assert) Name() string { return "single-threaded-checked" }

// Name returns the strategy name of L, or its type name when L has none.
func Name[L any]() string {
	if n, ok := any(new(L)).(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", *new(L))
}

// Compile-time interface checks
var (
	_ sync.Locker = (*None)(nil)
	_ sync.Locker = (*Mutex)(nil)
	_ sync.Locker = (*Assert)(nil)
)
