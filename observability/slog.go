package observability

import (
	"context"
	"log/slog"
)

// SlogObserver forwards events to a slog.Logger. The event type becomes the
// log message, the source and Data keys become attributes, and the level is
// mapped through SlogLevel.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver emitting to logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}

	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
