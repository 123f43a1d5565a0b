package alloc

import (
	"fmt"
	"sync"
)

// Budget is a byte allowance shared by every copy of a Limited allocator.
type Budget struct {
	mu    sync.Mutex
	limit int
	used  int
}

// NewBudget creates a Budget allowing up to limit bytes of live blocks.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Used returns the bytes currently charged against the budget.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// SetLimit changes the allowance. Live blocks above the new limit stay valid.
func (b *Budget) SetLimit(limit int) {
	b.mu.Lock()
	b.limit = limit
	b.mu.Unlock()
}

func (b *Budget) charge(size int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.used+size > b.limit {
		return false
	}
	b.used += size
	return true
}

func (b *Budget) refund(size int) {
	b.mu.Lock()
	b.used -= size
	b.mu.Unlock()
}

// Limited wraps an Allocator and fails requests that would push live storage
// past its Budget.
type Limited[T any, A Allocator[T]] struct {
	Inner  A
	Budget *Budget
}

// Limit wraps inner with a fresh Budget of maxBytes.
func Limit[T any, A Allocator[T]](inner A, maxBytes int) Limited[T, A] {
	return Limited[T, A]{Inner: inner, Budget: NewBudget(maxBytes)}
}

// Allocate charges the budget and delegates to the inner allocator.
func (l Limited[T, A]) Allocate(n int) ([]T, error) {
	if err := checkRequest[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	size := Bytes[T](n)
	if l.Budget != nil && !l.Budget.charge(size) {
		return nil, fmt.Errorf("%w: %d bytes exceeds budget", ErrOutOfMemory, size)
	}
	block, err := l.Inner.Allocate(n)
	if l.Budget == nil {
		return block, err
	}
	if err != nil {
		l.Budget.refund(size)
		return nil, err
	}
	// Deallocate refunds by len(block), so settle the charge on what the
	// inner allocator actually returned.
	if got := Bytes[T](len(block)); got != size {
		l.Budget.refund(size - got)
	}
	return block, nil
}

// Deallocate refunds the budget and delegates to the inner allocator.
func (l Limited[T, A]) Deallocate(block []T) {
	if block == nil {
		return
	}
	if l.Budget != nil {
		l.Budget.refund(Bytes[T](len(block)))
	}
	l.Inner.Deallocate(block)
}

// Name returns "limited(<inner>)".
func (l Limited[T, A]) Name() string { return "limited(" + l.Inner.Name() + ")" }

// Compile-time interface check
var _ Allocator[int] = Limited[int, Heap[int]]{}
