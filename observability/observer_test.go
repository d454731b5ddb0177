package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/messagekit/composer/observability"
)

type captureObserver struct {
	events *[]observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	*c.events = append(*c.events, event)
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  string
	}{
		{name: "trace range", level: 2, want: "TRACE"},
		{name: "verbose", level: observability.LevelVerbose, want: "DEBUG"},
		{name: "info", level: observability.LevelInfo, want: "INFO"},
		{name: "warning", level: observability.LevelWarning, want: "WARN"},
		{name: "error", level: observability.LevelError, want: "ERROR"},
		{name: "fatal range", level: 22, want: "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  slog.Level
	}{
		{name: "verbose", level: observability.LevelVerbose, want: slog.LevelDebug},
		{name: "info", level: observability.LevelInfo, want: slog.LevelInfo},
		{name: "warning", level: observability.LevelWarning, want: slog.LevelWarn},
		{name: "error", level: observability.LevelError, want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.SlogLevel(); got != tt.want {
				t.Errorf("Level(%d).SlogLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSlogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	obs := observability.NewSlogObserver(logger)
	obs.OnEvent(context.Background(), observability.Event{
		Type:      "composer.submit.error",
		Level:     observability.LevelError,
		Timestamp: time.Now(),
		Source:    "composer.Submit",
		Data:      map[string]any{"error": "handler failed"},
	})

	out := buf.String()
	if !strings.Contains(out, "composer.submit.error") {
		t.Errorf("log output missing event type: %s", out)
	}
	if !strings.Contains(out, "source=composer.Submit") {
		t.Errorf("log output missing source attribute: %s", out)
	}
	if !strings.Contains(out, "handler failed") {
		t.Errorf("log output missing data attribute: %s", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("log output missing mapped level: %s", out)
	}
}

func TestNoOpObserver(t *testing.T) {
	obs := observability.NoOpObserver{}
	obs.OnEvent(context.Background(), observability.Event{
		Type:  "some.event",
		Level: observability.LevelInfo,
	})
}

func TestMultiObserver(t *testing.T) {
	var first, second []observability.Event

	multi := observability.NewMultiObserver(
		&captureObserver{events: &first},
		nil,
		&captureObserver{events: &second},
	)

	multi.OnEvent(context.Background(), observability.Event{
		Type:  "some.event",
		Level: observability.LevelInfo,
	})

	if len(first) != 1 {
		t.Errorf("first observer received %d events, want 1", len(first))
	}
	if len(second) != 1 {
		t.Errorf("second observer received %d events, want 1", len(second))
	}
}

func TestObserverRegistry(t *testing.T) {
	if _, err := observability.GetObserver("noop"); err != nil {
		t.Errorf("noop observer should be pre-registered: %v", err)
	}
	if _, err := observability.GetObserver("slog"); err != nil {
		t.Errorf("slog observer should be pre-registered: %v", err)
	}
	if _, err := observability.GetObserver("missing"); err == nil {
		t.Error("expected error for unregistered observer name")
	}

	var events []observability.Event
	observability.RegisterObserver("capture", &captureObserver{events: &events})

	obs, err := observability.GetObserver("capture")
	if err != nil {
		t.Fatalf("GetObserver failed after registration: %v", err)
	}
	obs.OnEvent(context.Background(), observability.Event{Type: "some.event"})
	if len(events) != 1 {
		t.Errorf("registered observer received %d events, want 1", len(events))
	}
}
