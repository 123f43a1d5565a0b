package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/lock"
	"github.com/joshuapare/policyvec/vec/trace"
)

// TestNew_Empty tests default construction.
func TestNew_Empty(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.data, "no storage before the first growth")
	assert.Equal(t, "[] (size: 0, capacity: 0)", v.String())
}

// TestAppend_ValuesInOrder tests that every appended value is retrievable at its index.
func TestAppend_ValuesInOrder(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()

	const n = 1000
	for i := range n {
		require.NoError(t, v.Append(i*7))
	}

	require.Equal(t, n, v.Len())
	for i := range n {
		require.Equal(t, i*7, v.Get(i), "index %d", i)
	}
}

// TestAppend_DoublingSequence tests capacities 1, 2, 4 for the first three appends.
func TestAppend_DoublingSequence(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()

	var caps []int
	for i := range 3 {
		require.NoError(t, v.Append(i))
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4}, caps)
}

// TestAppend_CapacityIsPowerOfTwo tests that growth from zero only visits powers of two
// and never decreases.
func TestAppend_CapacityIsPowerOfTwo(t *testing.T) {
	v := NewLocal[byte]()
	defer v.Close()

	prev := 0
	for i := range 300 {
		require.NoError(t, v.Append(byte(i)))
		c := v.Cap()
		require.GreaterOrEqual(t, c, prev)
		require.Zero(t, c&(c-1), "capacity %d is not a power of two", c)
		prev = c
	}
	assert.Equal(t, 512, prev)
}

// TestNewSized tests sized construction, removal and append without reallocation.
func TestNewSized(t *testing.T) {
	v, err := NewSized[float64, lock.None](5, alloc.Heap[float64]{}, trace.Discard{})
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 5, v.Cap())
	for i := range 5 {
		assert.Zero(t, v.Get(i))
	}

	v.RemoveLast()
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 5, v.Cap())

	block := v.data
	require.NoError(t, v.Append(3.14))
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 5, v.Cap())
	assert.Same(t, &block[0], &v.data[0], "no reallocation when capacity suffices")
	assert.Equal(t, 3.14, v.Get(4))
}

// TestNewSized_ZeroAndNegative tests the degenerate sizes.
func TestNewSized_ZeroAndNegative(t *testing.T) {
	v, err := NewSized[int, lock.None](0, alloc.Heap[int]{}, trace.Discard{})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.data)

	_, err = NewSized[int, lock.None](-1, alloc.Heap[int]{}, trace.Discard{})
	require.ErrorIs(t, err, ErrInvalidSize)
}

// TestRemoveLast tests removal order and the empty no-op.
func TestRemoveLast(t *testing.T) {
	v := NewLocal[string]()
	defer v.Close()

	v.RemoveLast() // empty: no-op
	assert.Equal(t, 0, v.Len())

	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, v.Append(s))
	}
	v.RemoveLast()
	assert.Equal(t, []string{"a", "b"}, v.Snapshot())
	assert.Equal(t, 4, v.Cap(), "capacity never shrinks")
	assert.Empty(t, v.data[2], "removed slot is reset to the zero value")

	v.RemoveLast()
	v.RemoveLast()
	v.RemoveLast()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, v.Cap())
}

// TestReserve tests exact growth and idempotence.
func TestReserve(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()

	require.NoError(t, v.Append(1))
	require.NoError(t, v.Append(2))

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 10, v.Cap(), "reserve targets n exactly, not a doubling")
	assert.Equal(t, []int{1, 2}, v.Snapshot())

	block := v.data
	require.NoError(t, v.Reserve(10))
	require.NoError(t, v.Reserve(3))
	require.NoError(t, v.Reserve(-4))
	assert.Equal(t, 10, v.Cap())
	assert.Same(t, &block[0], &v.data[0], "smaller or equal reserve does not reallocate")

	for i := 3; i <= 10; i++ {
		require.NoError(t, v.Append(i))
	}
	assert.Equal(t, 10, v.Cap())
	require.NoError(t, v.Append(11))
	assert.Equal(t, 20, v.Cap(), "doubling resumes from the reserved capacity")
}

// TestAt_MutatesInPlace tests that At returns a reference into the storage.
func TestAt_MutatesInPlace(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()

	for _, x := range []int{10, 20, 30} {
		require.NoError(t, v.Append(x))
	}
	assert.Equal(t, 20, *v.At(1))

	*v.At(1) = 25
	assert.Equal(t, "[10, 25, 30] (size: 3, capacity: 4)", v.String())
}

// TestCheckedAccess tests the bounds-checked variants.
func TestCheckedAccess(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()

	require.NoError(t, v.Reserve(8))
	require.NoError(t, v.Append(42))

	p, err := v.CheckedAt(0)
	require.NoError(t, err)
	*p = 43

	got, err := v.Load(0)
	require.NoError(t, err)
	assert.Equal(t, 43, got)

	for _, i := range []int{-1, 1, 7, 8} {
		_, err := v.CheckedAt(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "CheckedAt(%d)", i)
		_, err = v.Load(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "Load(%d)", i)
	}
}

// TestClose tests release and reuse after Close.
func TestClose(t *testing.T) {
	a := alloc.Count[int](alloc.Heap[int]{})
	v := New[int, lock.None](a, trace.Discard{})

	for i := range 5 {
		require.NoError(t, v.Append(i))
	}
	v.Close()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Zero(t, a.Stats.LiveBlocks())

	v.Close() // second close is a no-op
	assert.Equal(t, a.Stats.Allocs(), a.Stats.Frees())

	require.NoError(t, v.Append(9))
	assert.Equal(t, []int{9}, v.Snapshot())
	v.Close()
	assert.Zero(t, a.Stats.LiveBlocks())
}

// TestSnapshot_IsIndependent tests that snapshots do not alias the storage.
func TestSnapshot_IsIndependent(t *testing.T) {
	v := NewLocal[int]()
	defer v.Close()
	require.NoError(t, v.Append(1))

	snap := v.Snapshot()
	snap[0] = 100
	assert.Equal(t, 1, v.Get(0))
}

// TestPolicies tests strategy naming.
func TestPolicies(t *testing.T) {
	v := New[int, lock.Mutex](alloc.NewPool[int](), trace.NewRecorder())
	defer v.Close()

	assert.Equal(t, Policies{Allocator: "pool", Lock: "multi-threaded", Tracer: "recorder"}, v.Policies())
	assert.Equal(t, Policies{Allocator: "heap", Lock: "single-threaded", Tracer: "discard"}, NewLocal[int]().Policies())
}
