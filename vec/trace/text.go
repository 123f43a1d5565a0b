package trace

import (
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Text renders each event as one line on a writer:
//
//	append value=10 size=0 capacity=0
//
// Numbers are formatted for English, so large byte counts read as 1,048,576.
// Copies of a Text share the writer and serialize their writes, so lines from
// different containers never interleave.
type Text struct {
	sink *textSink
}

type textSink struct {
	mu sync.Mutex
	w  io.Writer
	p  *message.Printer
}

// NewText creates a Text tracer writing to w.
func NewText(w io.Writer) Text {
	return Text{sink: &textSink{w: w, p: message.NewPrinter(language.English)}}
}

// Enabled reports whether the tracer has a writer.
func (t Text) Enabled() bool { return t.sink != nil }

// Log writes one line for ev. Write errors are dropped; tracing never affects
// the traced operation.
func (t Text) Log(ev Event) {
	if t.sink == nil {
		return
	}
	t.sink.mu.Lock()
	defer t.sink.mu.Unlock()

	p := t.sink.p
	_, _ = p.Fprint(t.sink.w, ev.Op)
	for _, f := range ev.Fields {
		_, _ = p.Fprintf(t.sink.w, " %s=%v", f.Key, f.Value)
	}
	_, _ = io.WriteString(t.sink.w, "\n")
}

// Name returns "text".
func (Text) Name() string { return "text" }

// Compile-time interface check
var _ Tracer = Text{}
