package trace

import (
	"fmt"
	"strings"
)

// Tracer receives structured events from a container.
type Tracer interface {
	// Enabled reports whether Log does anything. Callers skip building events
	// when it returns false.
	Enabled() bool

	// Log records one event. Implementations must not retain ev.Fields after
	// returning unless they copy it.
	Log(ev Event)
}

// Event is one traced operation.
type Event struct {
	Op     string
	Fields []Field
}

// Field is a named operand or piece of container state.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String renders the event as "op key=value ...".
func (ev Event) String() string {
	var b strings.Builder
	b.WriteString(ev.Op)
	for _, f := range ev.Fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

// Name returns the strategy name of t, or its type name when it has none.
func Name(t Tracer) string {
	if n, ok := t.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", t)
}

// Discard drops every event.
type Discard struct{}

// Enabled returns false.
func (Discard) Enabled() bool { return false }

// Log does nothing.
func (Discard) Log(Event) {}

// Name returns "discard".
func (Discard) Name() string { return "discard" }

// Compile-time interface check
var _ Tracer = Discard{}
