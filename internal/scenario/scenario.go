// Package scenario runs the demonstration workloads behind vecctl.
//
// Each scenario picks its strategies by name, drives a Vector through a fixed
// workload and returns a Report describing what happened.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/policyvec/internal/logger"
	"github.com/joshuapare/policyvec/vec"
	"github.com/joshuapare/policyvec/vec/alloc"
	"github.com/joshuapare/policyvec/vec/trace"
)

var (
	// ErrUnknownStrategy reports an allocator, lock or tracer name with no implementation.
	ErrUnknownStrategy = errors.New("scenario: unknown strategy")

	// ErrUnsafeLock reports a lock that cannot serve concurrent callers.
	ErrUnsafeLock = errors.New("scenario: lock is not safe for concurrent use")

	// ErrVerify reports contents that do not match what the workload wrote.
	ErrVerify = errors.New("scenario: verification failed")
)

// Options selects the strategies and sizes for a scenario.
type Options struct {
	Allocator string
	Lock      string
	Trace     string
	Threads   int
	PerThread int

	// TraceOutput receives the text tracer's lines. Nil discards them.
	TraceOutput io.Writer
}

// Step is one observation made while a scenario runs.
type Step struct {
	Name   string `json:"name"`
	Result string `json:"result"`
}

// Report is the outcome of one scenario run.
type Report struct {
	Scenario string         `json:"scenario"`
	Policies vec.Policies   `json:"policies"`
	Steps    []Step         `json:"steps"`
	Alloc    alloc.Snapshot `json:"alloc"`
	Events   []string       `json:"events,omitempty"`
}

func (r *Report) step(name string, format string, args ...any) {
	r.Steps = append(r.Steps, Step{Name: name, Result: fmt.Sprintf(format, args...)})
}

// tracer resolves a tracer name. The returned Recorder is enabled only for
// "recorder".
func tracer(o Options) (trace.Tracer, trace.Recorder, error) {
	switch o.Trace {
	case "", "discard":
		return trace.Discard{}, trace.Recorder{}, nil
	case "text":
		w := o.TraceOutput
		if w == nil {
			w = io.Discard
		}
		return trace.NewText(w), trace.Recorder{}, nil
	case "slog":
		return trace.Slog{Level: slog.LevelDebug}, trace.Recorder{}, nil
	case "recorder":
		rec := trace.NewRecorder()
		return rec, rec, nil
	default:
		return nil, trace.Recorder{}, fmt.Errorf("%w: tracer %q", ErrUnknownStrategy, o.Trace)
	}
}

func finish(r *Report, stats *alloc.Stats, rec trace.Recorder) {
	r.Alloc = stats.Snapshot()
	for _, ev := range rec.Events() {
		r.Events = append(r.Events, ev.String())
	}
	logger.Debug("scenario finished", "scenario", r.Scenario, "steps", len(r.Steps), "allocs", r.Alloc.Allocs)
}
