// Package trace provides instrumentation strategies for vec.Vector.
//
// The container reports each operation as an Event: an operation name plus an
// ordered list of fields. Tracers are a pure side channel; nothing a tracer
// does can change what the container computes.
//
// Every Tracer reports Enabled. The container checks it before building an
// event, so the Discard strategy costs one call and no allocation.
//
// # Implementations
//
//   - Discard: drops everything.
//   - Text: renders "op key=value ..." lines to an io.Writer.
//   - Slog: one log/slog record per event.
//   - OTel: one OpenTelemetry span event per event on a caller-supplied span.
//   - Recorder: keeps events in memory.
//   - Multi: fans an event out to several tracers.
//
// Text, Slog and Recorder render events in the order Log is called.
package trace
