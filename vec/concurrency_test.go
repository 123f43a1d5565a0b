package vec

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/lock"
	"github.com/joshuapare/policyvec/vec/trace"
)

// TestShared_ConcurrentAppends tests K goroutines appending M values each: nothing lost,
// nothing duplicated, per-goroutine order preserved.
func TestShared_ConcurrentAppends(t *testing.T) {
	const workers, perWorker = 16, 500

	v := NewShared[int]()
	defer v.Close()

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for j := range perWorker {
				if err := v.Append(w*perWorker + j); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, workers*perWorker, v.Len())

	got := v.Snapshot()
	last := make([]int, workers)
	for w := range last {
		last[w] = -1
	}
	for _, x := range got {
		w, j := x/perWorker, x%perWorker
		require.Greater(t, j, last[w], "worker %d values out of order", w)
		last[w] = j
	}

	slices.Sort(got)
	for i, x := range got {
		require.Equal(t, i, x)
	}
}

// TestShared_MixedOperations tests readers, writers and reservations racing on one vector.
func TestShared_MixedOperations(t *testing.T) {
	v := New[int, lock.Mutex](alloc.NewPool[int](), trace.Discard{})
	defer v.Close()
	require.NoError(t, v.Append(0))

	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			for i := range 1000 {
				if err := v.Append(i); err != nil {
					return err
				}
				if i%3 == 0 {
					v.RemoveLast()
				}
			}
			return nil
		})
	}
	for i := range 4 {
		g.Go(func() error {
			for range 1000 {
				if n := v.Len(); n > 0 {
					_ = v.Get(0)
				}
				_ = v.Cap()
				if err := v.Reserve(i * 64); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// 1000 appends and 334 removals per writer, plus the seed element.
	assert.Equal(t, 1+4*(1000-334), v.Len())
	assert.GreaterOrEqual(t, v.Cap(), v.Len())
}

// TestShared_CrossCopiesDoNotDeadlock tests concurrent A->B and B->A copy and move traffic.
func TestShared_CrossCopiesDoNotDeadlock(t *testing.T) {
	a, b := NewShared[int](), NewShared[int]()
	defer a.Close()
	defer b.Close()
	for i := range 8 {
		require.NoError(t, a.Append(i))
		require.NoError(t, b.Append(-i))
	}

	done := make(chan error, 1)
	go func() {
		var g errgroup.Group
		g.Go(func() error {
			for range 2000 {
				if err := a.CopyFrom(b); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for range 2000 {
				if err := b.CopyFrom(a); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for range 2000 {
				a.MoveFrom(b)
				b.MoveFrom(a)
			}
			return nil
		})
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("cross copies deadlocked")
	}

	// Every transfer preserves the multiset of one side's contents, so each vector
	// ends with a length of 0 or 8.
	assert.Contains(t, []int{0, 8}, a.Len())
	assert.Contains(t, []int{0, 8}, b.Len())
}

// TestAssert_DetectsMisuse tests that the checked single-threaded lock panics under
// overlapping access instead of corrupting state.
func TestAssert_DetectsMisuse(t *testing.T) {
	v := New[int, lock.Assert](alloc.Heap[int]{}, trace.Discard{})
	defer v.Close()

	// Hold the lock as a concurrent critical section would.
	v.mu.Lock()
	assert.PanicsWithValue(t, lock.ErrConcurrentUse, func() { _ = v.Append(1) })
	v.mu.Unlock()

	require.NoError(t, v.Append(1))
	assert.Equal(t, 1, v.Len())
}

// TestShared_CloneAndTakeRaceWithMoveFrom tests that Clone and Take read the source's
// allocator only under its lock while MoveFrom replaces it. Run with -race.
func TestShared_CloneAndTakeRaceWithMoveFrom(t *testing.T) {
	type counted = alloc.Counted[int, alloc.Heap[int]]
	left, right := alloc.Count[int](alloc.Heap[int]{}), alloc.Count[int](alloc.Heap[int]{})

	a := New[int, lock.Mutex](left, trace.Discard{})
	defer a.Close()
	require.NoError(t, a.Append(1))

	var g errgroup.Group
	g.Go(func() error {
		for range 2000 {
			c, err := a.Clone()
			if err != nil {
				return err
			}
			c.Close()
		}
		return nil
	})
	g.Go(func() error {
		for range 2000 {
			moved := a.Take()
			moved.Close()
		}
		return nil
	})
	g.Go(func() error {
		for i := range 2000 {
			src := left
			if i%2 == 1 {
				src = right
			}
			b := New[int, lock.Mutex](src, trace.Discard{})
			if err := b.Append(i); err != nil {
				return err
			}
			a.MoveFrom(b)
			b.Close()
		}
		return nil
	})
	require.NoError(t, g.Wait())
	a.Close()

	for _, c := range []counted{left, right} {
		s := c.Stats.Snapshot()
		assert.Equal(t, s.Allocs, s.Frees, "every block released by the allocator that produced it")
		assert.Zero(t, s.LiveBlocks)
		assert.Zero(t, s.LiveBytes)
	}
}
