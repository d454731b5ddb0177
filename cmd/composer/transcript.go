package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/messagekit/composer/session"
)

// transcript is the demo's delivery target: submitted payloads append here
// and the TUI renders them. A failure toggle simulates a flaky backend so
// the swallow-and-keep-draft behavior can be seen interactively.
type transcript struct {
	mu      sync.Mutex
	entries []string
	fail    bool
}

func newTranscript() *transcript {
	return &transcript{}
}

// deliver is the registered submit handler.
func (tr *transcript) deliver(_ context.Context, payload map[string]any) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	// Simulated latency so the submitting state is visible.
	time.Sleep(300 * time.Millisecond)

	if tr.fail {
		return errors.New("simulated delivery failure")
	}

	line := fmt.Sprintf("[%s]", time.Now().Format("15:04:05"))
	if ch, ok := payload["channel"].(string); ok {
		line += " #" + ch
	}
	if th, ok := payload["thread"].(string); ok {
		line += " (" + th + ")"
	}
	if id, ok := payload["message_id"].(string); ok {
		line += " edit:" + id
	}
	if content, ok := payload["content"].(string); ok {
		line += " " + content
	}
	if atts, ok := payload["attachments"].([]session.Attachment); ok && len(atts) > 0 {
		line += fmt.Sprintf(" (+%d attachments)", len(atts))
	}

	tr.entries = append(tr.entries, line)
	return nil
}

func (tr *transcript) lines() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := make([]string, len(tr.entries))
	copy(out, tr.entries)
	return out
}

func (tr *transcript) toggleFailure() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.fail = !tr.fail
	return tr.fail
}

func (tr *transcript) failing() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.fail
}
