package alloc

import "sync/atomic"

// Stats accumulates allocation counters. It is safe for concurrent use.
type Stats struct {
	allocs     atomic.Int64
	frees      atomic.Int64
	liveBlocks atomic.Int64
	liveBytes  atomic.Int64
}

// Allocs returns the number of non-empty blocks handed out.
func (s *Stats) Allocs() int64 { return s.allocs.Load() }

// Frees returns the number of non-empty blocks released.
func (s *Stats) Frees() int64 { return s.frees.Load() }

// LiveBlocks returns the number of blocks allocated but not yet released.
func (s *Stats) LiveBlocks() int64 { return s.liveBlocks.Load() }

// LiveBytes returns the byte size of all live blocks.
func (s *Stats) LiveBytes() int64 { return s.liveBytes.Load() }

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Allocs     int64 `json:"allocs"`
	Frees      int64 `json:"frees"`
	LiveBlocks int64 `json:"live_blocks"`
	LiveBytes  int64 `json:"live_bytes"`
}

// Snapshot copies the current counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Allocs:     s.Allocs(),
		Frees:      s.Frees(),
		LiveBlocks: s.LiveBlocks(),
		LiveBytes:  s.LiveBytes(),
	}
}

// Counted wraps an Allocator and records every non-empty block it hands out and
// takes back. Copies of a Counted share the same Stats.
type Counted[T any, A Allocator[T]] struct {
	Inner A
	Stats *Stats
}

// Count wraps inner with fresh Stats.
func Count[T any, A Allocator[T]](inner A) Counted[T, A] {
	return Counted[T, A]{Inner: inner, Stats: &Stats{}}
}

// Allocate delegates to the inner allocator and records the block on success.
func (c Counted[T, A]) Allocate(n int) ([]T, error) {
	block, err := c.Inner.Allocate(n)
	if err != nil || block == nil {
		return block, err
	}
	if c.Stats != nil {
		c.Stats.allocs.Add(1)
		c.Stats.liveBlocks.Add(1)
		c.Stats.liveBytes.Add(int64(Bytes[T](len(block))))
	}
	return block, nil
}

// Deallocate records the release and delegates to the inner allocator.
func (c Counted[T, A]) Deallocate(block []T) {
	if block == nil {
		return
	}
	if c.Stats != nil {
		c.Stats.frees.Add(1)
		c.Stats.liveBlocks.Add(-1)
		c.Stats.liveBytes.Add(-int64(Bytes[T](len(block))))
	}
	c.Inner.Deallocate(block)
}

// Name returns "counted(<inner>)".
func (c Counted[T, A]) Name() string { return "counted(" + c.Inner.Name() + ")" }

// Compile-time interface check
var _ Allocator[int] = Counted[int, Heap[int]]{}
