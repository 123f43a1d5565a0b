package scenario

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/policyvec/internal/logger"
)

// Concurrent has Threads goroutines each append PerThread values
// (thread*100 + j) to one shared Vector, then checks that every value arrived
// once and each thread's values kept their order.
func Concurrent(o Options) (*Report, error) {
	if o.Lock != "mutex" {
		return nil, fmt.Errorf("%w: %q", ErrUnsafeLock, o.Lock)
	}
	if o.Threads <= 0 || o.PerThread <= 0 {
		return nil, fmt.Errorf("scenario: threads and per_thread must be positive, got %d and %d", o.Threads, o.PerThread)
	}
	tr, rec, err := tracer(o)
	if err != nil {
		return nil, err
	}
	v, stats, err := open[int](o.Allocator, o.Lock, 0, tr)
	if err != nil {
		return nil, err
	}
	defer v.Close()
	logger.Info("running scenario", "scenario", "concurrent", "threads", o.Threads, "per_thread", o.PerThread)

	// Values are thread*stride + j, so stride must exceed every j.
	stride := max(100, o.PerThread)

	var g errgroup.Group
	for i := range o.Threads {
		g.Go(func() error {
			logger.Debug("worker started", "worker", i)
			for j := range o.PerThread {
				if err := v.Append(i*stride + j); err != nil {
					return fmt.Errorf("worker %d: %w", i, err)
				}
			}
			logger.Debug("worker finished", "worker", i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{Scenario: "concurrent", Policies: v.Policies()}
	got := v.Snapshot()
	if err := verifyConcurrent(got, o.Threads, o.PerThread, stride); err != nil {
		return nil, err
	}
	r.step("workers", "%d x %d appends", o.Threads, o.PerThread)
	r.step("size", "%d", v.Len())
	r.step("capacity", "%d", v.Cap())
	r.step("verify", "ok")
	if len(got) <= 64 {
		r.step("final", "%s", v)
	}

	finish(r, stats, rec)
	return r, nil
}

func verifyConcurrent(got []int, threads, perThread, stride int) error {
	if len(got) != threads*perThread {
		return fmt.Errorf("%w: size %d, want %d", ErrVerify, len(got), threads*perThread)
	}
	next := make([]int, threads)
	for _, x := range got {
		i, j := x/stride, x%stride
		if i < 0 || i >= threads || j >= perThread {
			return fmt.Errorf("%w: unexpected value %d", ErrVerify, x)
		}
		if j != next[i] {
			return fmt.Errorf("%w: worker %d wrote %d, want %d next", ErrVerify, i, j, next[i])
		}
		next[i]++
	}
	if slices.ContainsFunc(next, func(n int) bool { return n != perThread }) {
		return fmt.Errorf("%w: missing values", ErrVerify)
	}
	return nil
}
