package trace

import "sync"

// Recorder keeps every event in memory. Copies of a Recorder share the same
// recording; the zero value records nothing.
type Recorder struct {
	rec *recording
}

type recording struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() Recorder {
	return Recorder{rec: &recording{}}
}

// Enabled reports whether the recorder was created with NewRecorder.
func (r Recorder) Enabled() bool { return r.rec != nil }

// Log appends a copy of ev.
func (r Recorder) Log(ev Event) {
	if r.rec == nil {
		return
	}
	ev.Fields = append([]Field(nil), ev.Fields...)

	r.rec.mu.Lock()
	r.rec.events = append(r.rec.events, ev)
	r.rec.mu.Unlock()
}

// Events returns the recorded events in call order.
func (r Recorder) Events() []Event {
	if r.rec == nil {
		return nil
	}
	r.rec.mu.Lock()
	defer r.rec.mu.Unlock()
	return append([]Event(nil), r.rec.events...)
}

// Ops returns the operation names of the recorded events in call order.
func (r Recorder) Ops() []string {
	events := r.Events()
	ops := make([]string, len(events))
	for i, ev := range events {
		ops[i] = ev.Op
	}
	return ops
}

// Reset drops all recorded events.
func (r Recorder) Reset() {
	if r.rec == nil {
		return
	}
	r.rec.mu.Lock()
	r.rec.events = nil
	r.rec.mu.Unlock()
}

// Name returns "recorder".
func (Recorder) Name() string { return "recorder" }

// Multi fans each event out to every enabled tracer, in slice order.
// It dispatches dynamically; use it for tooling, not hot paths.
type Multi []Tracer

// Enabled reports whether any tracer is enabled.
func (m Multi) Enabled() bool {
	for _, t := range m {
		if t.Enabled() {
			return true
		}
	}
	return false
}

// Log forwards ev to every enabled tracer.
func (m Multi) Log(ev Event) {
	for _, t := range m {
		if t.Enabled() {
			t.Log(ev)
		}
	}
}

// Name returns "multi".
func (Multi) Name() string { return "multi" }

// Compile-time interface checks
var (
	_ Tracer = Recorder{}
	_ Tracer = Multi{}
)
