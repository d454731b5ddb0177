// Package observability delivers structured events from composer subsystems
// to pluggable observers. Severity values follow the OpenTelemetry
// SeverityNumber ranges so events can feed an OTel collector without
// translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is an event severity in OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG range, emitted as slog.LevelDebug
	LevelInfo    Level = 9  // OTel INFO range, emitted as slog.LevelInfo
	LevelWarning Level = 13 // OTel WARN range, emitted as slog.LevelWarn
	LevelError   Level = 17 // OTel ERROR range, emitted as slog.LevelError
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps the level onto log/slog's scale.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names the kind of event. Consuming packages define their own
// constants (e.g. "composer.submit.error").
type EventType string

// Event is a single observability record. Type maps to the OTel EventName,
// Level to SeverityNumber, Source to the InstrumentationScope, and Data to
// Attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events for logging, tracing, or metrics.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoOpObserver discards every event.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
