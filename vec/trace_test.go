package vec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/lock"
	"github.com/joshuapare/policyvec/vec/trace"
)

// TestTrace_GrowthSequence tests the event stream for three appends from empty.
func TestTrace_GrowthSequence(t *testing.T) {
	rec := trace.NewRecorder()
	v := New[int, lock.None](alloc.Heap[int]{}, rec)

	for i := range 3 {
		require.NoError(t, v.Append(i))
	}
	v.Close()

	assert.Equal(t, []string{
		"construct",
		"append", "allocate",
		"append", "allocate", "deallocate",
		"append", "allocate", "deallocate",
		"destroy", "deallocate",
	}, rec.Ops())

	events := rec.Events()
	assert.Equal(t, "construct allocator=heap lock=single-threaded tracer=recorder", events[0].String())
	assert.Equal(t, "append value=2 size=2 capacity=2", events[6].String())
	assert.Equal(t, "allocate allocator=heap elems=4 bytes=32", events[7].String())
	assert.Equal(t, "destroy size=3 capacity=4", events[9].String())
}

// TestTrace_TextRendering tests the rendered text trace for a copy and a move.
func TestTrace_TextRendering(t *testing.T) {
	var buf bytes.Buffer
	v, err := NewSized[int, lock.Mutex](2, alloc.Heap[int]{}, trace.NewText(&buf))
	require.NoError(t, err)

	cp, err := v.Clone()
	require.NoError(t, err)
	moved := cp.Take()
	v.RemoveLast()
	_ = v.Get(0)
	_, _ = v.Load(5)

	want := "construct allocator=heap lock=multi-threaded tracer=text size=2\n" +
		"allocate allocator=heap elems=2 bytes=16\n" +
		"copy_construct size=2 capacity=2\n" +
		"allocate allocator=heap elems=2 bytes=16\n" +
		"move_construct size=2 capacity=2\n" +
		"remove_last size=2 capacity=2\n" +
		"get index=0\n" +
		"get index=5 checked=true\n"
	assert.Equal(t, want, buf.String())

	moved.Close()
	cp.Close()
	v.Close()
}

// TestTrace_DoesNotChangeResults tests that identical workloads produce identical state
// with and without instrumentation.
func TestTrace_DoesNotChangeResults(t *testing.T) {
	var buf bytes.Buffer
	quiet := New[int, lock.None](alloc.Heap[int]{}, trace.Discard{})
	loud := New[int, lock.None](alloc.Heap[int]{}, trace.NewText(&buf))

	workload := func(add func(int) error, remove func(), reserve func(int) error) {
		for i := range 40 {
			require.NoError(t, add(i))
			if i%5 == 4 {
				remove()
			}
			if i == 17 {
				require.NoError(t, reserve(50))
			}
		}
	}
	workload(quiet.Append, quiet.RemoveLast, quiet.Reserve)
	workload(loud.Append, loud.RemoveLast, loud.Reserve)

	assert.Equal(t, quiet.Snapshot(), loud.Snapshot())
	assert.Equal(t, quiet.Cap(), loud.Cap())
	assert.NotEmpty(t, buf.String())
}
