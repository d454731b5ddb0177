package composer

import (
	"context"
	"maps"
	"time"

	"github.com/messagekit/composer/observability"
)

// Submit forwards a snapshot of the session to the bound handler, merged
// with the composer's bound extras and the per-call extras (later sources
// win on key collisions).
//
// The submitting flag is raised before the handler runs and cleared as the
// final step, success or failure. On success the session is reset to an
// empty draft. Handler failure is logged through the observer and otherwise
// swallowed: the draft is left intact so the user can retry, and callers
// observe the outcome only through the session state. Submit does not guard
// against concurrent calls; callers disable the triggering control while
// the submitting flag is raised.
func (c *Composer) Submit(ctx context.Context, extra map[string]any) {
	c.mu.RLock()
	h := c.handler
	bound := maps.Clone(c.extra)
	c.mu.RUnlock()

	c.session.SetSubmitting(true)
	defer c.session.SetSubmitting(false)

	snapshot := c.session.Snapshot()
	payload := map[string]any{
		"content":     snapshot.Content,
		"attachments": snapshot.Attachments,
		"metadata":    snapshot.Metadata,
	}
	maps.Copy(payload, bound)
	maps.Copy(payload, extra)

	c.observer.OnEvent(ctx, observability.Event{
		Type:      EventSubmitStart,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "composer.Submit",
		Data: map[string]any{
			"session_id":     c.session.ID(),
			"content_length": len(snapshot.Content),
			"attachments":    len(snapshot.Attachments),
		},
	})

	if h == nil {
		c.observer.OnEvent(ctx, observability.Event{
			Type:      EventSubmitError,
			Level:     observability.LevelError,
			Timestamp: time.Now(),
			Source:    "composer.Submit",
			Data: map[string]any{
				"session_id": c.session.ID(),
				"error":      ErrNoHandler.Error(),
			},
		})
		return
	}

	if err := h(ctx, payload); err != nil {
		c.observer.OnEvent(ctx, observability.Event{
			Type:      EventSubmitError,
			Level:     observability.LevelError,
			Timestamp: time.Now(),
			Source:    "composer.Submit",
			Data: map[string]any{
				"session_id": c.session.ID(),
				"error":      err.Error(),
			},
		})
		return
	}

	c.session.Reset()

	c.observer.OnEvent(ctx, observability.Event{
		Type:      EventSubmitComplete,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "composer.Submit",
		Data: map[string]any{
			"session_id": c.session.ID(),
		},
	})
}
