package trace

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTel adds each event to Span as a span event named after the operation.
// Fields become span event attributes.
type OTel struct {
	Span oteltrace.Span
}

// Enabled reports whether the span is recording.
func (o OTel) Enabled() bool {
	return o.Span != nil && o.Span.IsRecording()
}

// Log adds ev to the span.
func (o OTel) Log(ev Event) {
	if o.Span == nil {
		return
	}
	o.Span.AddEvent(ev.Op, oteltrace.WithAttributes(attributes(ev.Fields)...))
}

// Name returns "otel".
func (OTel) Name() string { return "otel" }

func attributes(fields []Field) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, len(fields))
	for i, f := range fields {
		kvs[i] = attributeOf(f)
	}
	return kvs
}

func attributeOf(f Field) attribute.KeyValue {
	switch v := f.Value.(type) {
	case string:
		return attribute.String(f.Key, v)
	case bool:
		return attribute.Bool(f.Key, v)
	case int:
		return attribute.Int(f.Key, v)
	case int32:
		return attribute.Int64(f.Key, int64(v))
	case int64:
		return attribute.Int64(f.Key, v)
	case uint32:
		return attribute.Int64(f.Key, int64(v))
	case uint64:
		return attribute.Int64(f.Key, int64(v))
	case float32:
		return attribute.Float64(f.Key, float64(v))
	case float64:
		return attribute.Float64(f.Key, v)
	case fmt.Stringer:
		return attribute.String(f.Key, v.String())
	default:
		return attribute.String(f.Key, fmt.Sprint(v))
	}
}

// Compile-time interface check
var _ Tracer = OTel{}
