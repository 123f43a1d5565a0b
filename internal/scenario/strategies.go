package scenario

import (
	"fmt"

	"github.com/joshuapare/policyvec/vec"
	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/lock"
	"github.com/joshuapare/policyvec/vec/trace"
)

// handle is the subset of a Vector the scenarios drive. It hides the strategy
// type parameters so a strategy combination can be picked by name at runtime.
type handle[T any] interface {
	Append(val T) error
	At(i int) *T
	Get(i int) T
	RemoveLast()
	Len() int
	Cap() int
	Snapshot() []T
	String() string
	Policies() vec.Policies
	Close()
	Clone() (handle[T], error)
	Take() handle[T]
}

// box adapts a concrete Vector to handle.
type box[T any, L any, PL lock.Locker[L], A alloc.Allocator[T]] struct {
	*vec.Vector[T, L, PL, A, trace.Tracer]
}

func (b box[T, L, PL, A]) Clone() (handle[T], error) {
	c, err := b.Vector.Clone()
	if err != nil {
		return nil, err
	}
	return box[T, L, PL, A]{c}, nil
}

func (b box[T, L, PL, A]) Take() handle[T] {
	return box[T, L, PL, A]{b.Vector.Take()}
}

// open builds a Vector of n zero values for the named allocator and lock. Every
// allocator is wrapped in alloc.Counted; the returned Stats belong to it.
func open[T any](allocator, lockName string, n int, tr trace.Tracer) (handle[T], *alloc.Stats, error) {
	switch allocator {
	case "heap":
		a := alloc.Count[T](alloc.Heap[T]{})
		h, err := withLock[T](lockName, n, a, tr)
		return h, a.Stats, err
	case "pool":
		a := alloc.Count[T](alloc.NewPool[T]())
		h, err := withLock[T](lockName, n, a, tr)
		return h, a.Stats, err
	case "mmap":
		a := alloc.Count[T](alloc.Mmap[T]{})
		h, err := withLock[T](lockName, n, a, tr)
		return h, a.Stats, err
	default:
		return nil, nil, fmt.Errorf("%w: allocator %q", ErrUnknownStrategy, allocator)
	}
}

func withLock[T any, A alloc.Allocator[T]](name string, n int, a A, tr trace.Tracer) (handle[T], error) {
	switch name {
	case "none":
		return build[T, lock.None](n, a, tr)
	case "mutex":
		return build[T, lock.Mutex](n, a, tr)
	case "assert":
		return build[T, lock.Assert](n, a, tr)
	default:
		return nil, fmt.Errorf("%w: lock %q", ErrUnknownStrategy, name)
	}
}

func build[T any, L any, PL lock.Locker[L], A alloc.Allocator[T]](n int, a A, tr trace.Tracer) (handle[T], error) {
	if n == 0 {
		return box[T, L, PL, A]{vec.New[T, L, PL](a, tr)}, nil
	}
	v, err := vec.NewSized[T, L, PL](n, a, tr)
	if err != nil {
		return nil, err
	}
	return box[T, L, PL, A]{v}, nil
}
