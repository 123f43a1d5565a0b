package vec

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/lock"
	"github.com/joshuapare/policyvec/vec/trace"
)

// nextID hands out instance ids. Ids only grow, so they give every pair of
// containers a fixed lock acquisition order.
var nextID atomic.Uint64

// Vector is a growable contiguous sequence of T.
//
// Type parameters:
//   - T: element type
//   - L, PL: concurrency strategy (lock.None, lock.Mutex, lock.Assert) and its pointer type
//   - A: allocation strategy (alloc.Heap, alloc.Pool, alloc.Mmap, ...)
//   - R: instrumentation strategy (trace.Discard, trace.Text, ...)
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) hold zero values.
// Every method takes the container's lock. A Vector must not be copied after
// first use; use Clone or Take instead.
type Vector[T any, L any, PL lock.Locker[L], A alloc.Allocator[T], R trace.Tracer] struct {
	mu L
	id uint64

	// data is the storage block; len(data) is the capacity.
	data []T
	size int

	alloc A
	tr    R
	hooks hooks[T]
}

// New creates an empty Vector. No storage is allocated until the first
// growth-triggering operation.
//
//	v := vec.New[int, lock.Mutex](alloc.Heap[int]{}, trace.Discard{})
func New[T any, L any, PL lock.Locker[L], A alloc.Allocator[T], R trace.Tracer](a A, r R) *Vector[T, L, PL, A, R] {
	v := newVector[T, L, PL](a, r)
	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "construct", Fields: v.policyFields()})
	}
	return v
}

// NewSized creates a Vector holding n zero-valued elements with capacity n.
// NewSized(0, ...) is equivalent to New.
func NewSized[T any, L any, PL lock.Locker[L], A alloc.Allocator[T], R trace.Tracer](n int, a A, r R) (*Vector[T, L, PL, A, R], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	v := newVector[T, L, PL](a, r)
	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "construct", Fields: append(v.policyFields(), trace.F("size", n))})
	}
	if n == 0 {
		return v, nil
	}

	block, err := v.allocate(n)
	if err != nil {
		return nil, err
	}
	v.data = block
	v.size = n
	return v, nil
}

func newVector[T any, L any, PL lock.Locker[L], A alloc.Allocator[T], R trace.Tracer](a A, r R) *Vector[T, L, PL, A, R] {
	return &Vector[T, L, PL, A, R]{
		id:    nextID.Add(1),
		alloc: a,
		tr:    r,
		hooks: hooksFor[T](),
	}
}

func (v *Vector[T, L, PL, A, R]) lock()   { PL(&v.mu).Lock() }
func (v *Vector[T, L, PL, A, R]) unlock() { PL(&v.mu).Unlock() }

// lockWith acquires v's and other's locks in instance-id order.
func (v *Vector[T, L, PL, A, R]) lockWith(other *Vector[T, L, PL, A, R]) {
	lock.LockPair[L, PL](&v.mu, v.id, &other.mu, other.id)
}

func (v *Vector[T, L, PL, A, R]) unlockWith(other *Vector[T, L, PL, A, R]) {
	lock.UnlockPair[L, PL](&v.mu, v.id, &other.mu, other.id)
}

// Close destroys every live element in index order and releases the storage.
// The Vector is empty afterwards and may be reused.
func (v *Vector[T, L, PL, A, R]) Close() {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "destroy", Fields: v.stateFields()})
	}
	v.destroyAll()
}

// Clone returns a new Vector holding copies of v's elements in freshly
// allocated storage of the same capacity. The copy shares v's allocator and
// tracer values but no storage.
func (v *Vector[T, L, PL, A, R]) Clone() (*Vector[T, L, PL, A, R], error) {
	// MoveFrom rewrites v.alloc, so it is read only under v's lock.
	dst := newVector[T, L, PL](*new(A), v.tr)

	dst.lockWith(v)
	defer dst.unlockWith(v)

	dst.alloc = v.alloc
	if dst.tr.Enabled() {
		dst.tr.Log(trace.Event{Op: "copy_construct", Fields: v.stateFields()})
	}
	if err := dst.copyFrom(v); err != nil {
		return nil, err
	}
	return dst, nil
}

// CopyFrom replaces v's contents with copies of src's elements. Copying a
// Vector onto itself is a no-op. On allocation failure v is left unchanged.
func (v *Vector[T, L, PL, A, R]) CopyFrom(src *Vector[T, L, PL, A, R]) error {
	if v == src {
		return nil
	}
	v.lockWith(src)
	defer v.unlockWith(src)

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "copy_assign", Fields: src.stateFields()})
	}
	return v.copyFrom(src)
}

// copyFrom allocates storage matching src's capacity, then releases v's
// current state and copies src's live elements. Both locks must be held.
func (v *Vector[T, L, PL, A, R]) copyFrom(src *Vector[T, L, PL, A, R]) error {
	block, err := v.allocate(len(src.data))
	if err != nil {
		return err
	}
	v.destroyAll()

	for i := range src.size {
		block[i] = v.hooks.copyElem(&src.data[i])
	}
	v.data = block
	v.size = src.size
	return nil
}

// Take moves v's storage into a new Vector and leaves v empty with no
// storage. The storage keeps travelling with the allocator that produced it.
func (v *Vector[T, L, PL, A, R]) Take() *Vector[T, L, PL, A, R] {
	// adopt copies the allocator under both locks.
	dst := newVector[T, L, PL](*new(A), v.tr)

	dst.lockWith(v)
	defer dst.unlockWith(v)

	if dst.tr.Enabled() {
		dst.tr.Log(trace.Event{Op: "move_construct", Fields: v.stateFields()})
	}
	dst.adopt(v)
	return dst
}

// MoveFrom releases v's current state and takes over src's storage, leaving
// src empty with no storage. Moving a Vector onto itself is a no-op.
func (v *Vector[T, L, PL, A, R]) MoveFrom(src *Vector[T, L, PL, A, R]) {
	if v == src {
		return
	}
	v.lockWith(src)
	defer v.unlockWith(src)

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "move_assign", Fields: src.stateFields()})
	}
	v.destroyAll()
	v.adopt(src)
}

// adopt transfers src's storage, size and allocator to v. v must hold no
// storage and both locks must be held.
func (v *Vector[T, L, PL, A, R]) adopt(src *Vector[T, L, PL, A, R]) {
	v.data, v.size, v.alloc = src.data, src.size, src.alloc
	src.data, src.size = nil, 0
}

// Append adds val at index Len(), doubling the capacity first when the
// storage is full (0 grows to 1). On allocation failure v is left unchanged.
func (v *Vector[T, L, PL, A, R]) Append(val T) error {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "append", Fields: []trace.Field{
			trace.F("value", val), trace.F("size", v.size), trace.F("capacity", len(v.data)),
		}})
	}

	if v.size == len(v.data) {
		newCap := 1
		if c := len(v.data); c > 0 {
			newCap = c * 2
		}
		if err := v.grow(newCap); err != nil {
			return err
		}
	}
	v.data[v.size] = val
	v.size++
	return nil
}

// RemoveLast destroys the last element. It does nothing on an empty Vector
// and never shrinks the capacity.
func (v *Vector[T, L, PL, A, R]) RemoveLast() {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "remove_last", Fields: v.stateFields()})
	}
	if v.size == 0 {
		return
	}
	v.size--
	v.hooks.destroyElem(&v.data[v.size])
}

// Reserve grows the capacity to exactly n when n exceeds it; otherwise it
// does nothing. On allocation failure v is left unchanged.
func (v *Vector[T, L, PL, A, R]) Reserve(n int) error {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "reserve", Fields: []trace.Field{
			trace.F("n", n), trace.F("capacity", len(v.data)),
		}})
	}
	if n <= len(v.data) {
		return nil
	}
	return v.grow(n)
}

// At returns a pointer to the element at index i. The index is not checked
// against Len: i must be in [0, Len()). The pointer stays valid until the
// next growth, removal of that element, or Close, and writes through it
// happen outside the lock.
func (v *Vector[T, L, PL, A, R]) At(i int) *T {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "at", Fields: []trace.Field{trace.F("index", i)}})
	}
	return &v.data[i]
}

// Get returns a copy of the element at index i. The index is not checked
// against Len: i must be in [0, Len()).
func (v *Vector[T, L, PL, A, R]) Get(i int) T {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "get", Fields: []trace.Field{trace.F("index", i)}})
	}
	return v.data[i]
}

// CheckedAt is At with bounds checking.
func (v *Vector[T, L, PL, A, R]) CheckedAt(i int) (*T, error) {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "at", Fields: []trace.Field{trace.F("index", i), trace.F("checked", true)}})
	}
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, v.size)
	}
	return &v.data[i], nil
}

// Load is Get with bounds checking.
func (v *Vector[T, L, PL, A, R]) Load(i int) (T, error) {
	v.lock()
	defer v.unlock()

	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "get", Fields: []trace.Field{trace.F("index", i), trace.F("checked", true)}})
	}
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, v.size)
	}
	return v.data[i], nil
}

// Len returns the number of live elements.
func (v *Vector[T, L, PL, A, R]) Len() int {
	v.lock()
	defer v.unlock()
	return v.size
}

// Cap returns the number of slots in the current storage block.
func (v *Vector[T, L, PL, A, R]) Cap() int {
	v.lock()
	defer v.unlock()
	return len(v.data)
}

// Snapshot returns a copy of the live elements.
func (v *Vector[T, L, PL, A, R]) Snapshot() []T {
	v.lock()
	defer v.unlock()

	out := make([]T, v.size)
	copy(out, v.data[:v.size])
	return out
}

// String renders the contents as "[10, 20] (size: 2, capacity: 2)".
func (v *Vector[T, L, PL, A, R]) String() string {
	v.lock()
	defer v.unlock()

	var b strings.Builder
	b.WriteByte('[')
	for i := range v.size {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v.data[i])
	}
	fmt.Fprintf(&b, "] (size: %d, capacity: %d)", v.size, len(v.data))
	return b.String()
}

// Policies names the strategies a Vector was built with.
type Policies struct {
	Allocator string `json:"allocator"`
	Lock      string `json:"lock"`
	Tracer    string `json:"tracer"`
}

// Policies returns the names of v's strategies.
func (v *Vector[T, L, PL, A, R]) Policies() Policies {
	v.lock()
	defer v.unlock()
	return Policies{
		Allocator: v.alloc.Name(),
		Lock:      lock.Name[L](),
		Tracer:    trace.Name(v.tr),
	}
}

// grow moves the live elements into a new block of newCap slots. The new
// block is allocated before anything is touched, so a failed allocation
// leaves v intact. The lock must be held.
func (v *Vector[T, L, PL, A, R]) grow(newCap int) error {
	block, err := v.allocate(newCap)
	if err != nil {
		return err
	}
	copy(block, v.data[:v.size])
	clear(v.data[:v.size])

	old := v.data
	v.data = block
	v.release(old)
	return nil
}

// allocate obtains a block of exactly n slots from the allocator.
func (v *Vector[T, L, PL, A, R]) allocate(n int) ([]T, error) {
	block, err := v.alloc.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("vec: allocate %d elements with %s: %w", n, v.alloc.Name(), err)
	}
	if len(block) != n {
		v.alloc.Deallocate(block)
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortBlock, len(block), n)
	}
	if v.tr.Enabled() && n > 0 {
		v.tr.Log(trace.Event{Op: "allocate", Fields: []trace.Field{
			trace.F("allocator", v.alloc.Name()), trace.F("elems", n), trace.F("bytes", alloc.Bytes[T](n)),
		}})
	}
	return block, nil
}

// release hands a block back to the allocator.
func (v *Vector[T, L, PL, A, R]) release(block []T) {
	if block == nil {
		return
	}
	if v.tr.Enabled() {
		v.tr.Log(trace.Event{Op: "deallocate", Fields: []trace.Field{
			trace.F("allocator", v.alloc.Name()), trace.F("elems", len(block)),
		}})
	}
	v.alloc.Deallocate(block)
}

// destroyAll destroys every live element in index order and releases the
// storage. The lock must be held.
func (v *Vector[T, L, PL, A, R]) destroyAll() {
	for i := range v.size {
		v.hooks.destroyElem(&v.data[i])
	}
	v.size = 0
	v.release(v.data)
	v.data = nil
}

func (v *Vector[T, L, PL, A, R]) stateFields() []trace.Field {
	return []trace.Field{trace.F("size", v.size), trace.F("capacity", len(v.data))}
}

func (v *Vector[T, L, PL, A, R]) policyFields() []trace.Field {
	return []trace.Field{
		trace.F("allocator", v.alloc.Name()),
		trace.F("lock", lock.Name[L]()),
		trace.F("tracer", trace.Name(v.tr)),
	}
}
