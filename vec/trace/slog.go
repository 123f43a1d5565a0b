package trace

import (
	"context"
	"log/slog"

	"github.com/joshuapare/policyvec/internal/logger"
)

// Slog emits each event as a log/slog record with the operation as message and
// the fields as attributes. A nil Logger uses the process logger.
type Slog struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (s Slog) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logger.L
}

// Enabled reports whether the logger accepts records at s.Level.
func (s Slog) Enabled() bool {
	return s.logger().Enabled(context.Background(), s.Level)
}

// Log emits ev.
func (s Slog) Log(ev Event) {
	attrs := make([]slog.Attr, len(ev.Fields))
	for i, f := range ev.Fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	s.logger().LogAttrs(context.Background(), s.Level, ev.Op, attrs...)
}

// Name returns "slog".
func (Slog) Name() string { return "slog" }

// Compile-time interface check
var _ Tracer = Slog{}
