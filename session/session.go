// Package session manages the mutable state of a single message composition.
// A session owns the draft content, its attachments, free-form metadata, and
// the submitting flag, and notifies subscribers synchronously after every
// mutation. Implementations must be safe for concurrent use.
package session

// Selector extracts the slice of state a subscriber cares about. Subscribers
// with a selector are only notified when the selected value changes; a nil
// selector selects the whole state and fires on every mutation.
type Selector func(State) any

// Session is the composition state container. One Session exists per
// composer instantiation and lives until its owning scope is torn down.
type Session interface {
	// ID returns the unique session identifier.
	ID() string
	// Snapshot returns a defensive copy of the current state.
	Snapshot() State
	// UpdateContent replaces the draft content. No validation is applied.
	UpdateContent(value string)
	// AddAttachment appends an attachment. Callers are responsible for
	// generating unique IDs; no deduplication is performed.
	AddAttachment(a Attachment)
	// RemoveAttachment removes the first attachment whose ID matches.
	// Removing an unknown ID is a no-op, not an error.
	RemoveAttachment(id string)
	// UpdateMetadata merges a single key into the metadata mapping,
	// silently overwriting an existing key.
	UpdateMetadata(key string, value any)
	// SetSubmitting flips the in-flight submission flag. The flag is not
	// touched by Reset.
	SetSubmitting(submitting bool)
	// Reset clears content, attachments, and metadata. The submitting
	// flag is left as-is.
	Reset()
	// Subscribe registers fn to run synchronously after each mutation
	// that changes the slice selected by selector. The returned cancel
	// func removes the subscription.
	Subscribe(selector Selector, fn func(State)) (cancel func())
}

// New creates a Session from configuration, backed by in-memory storage.
func New(cfg *Config) (Session, error) {
	return NewMemorySession(cfg), nil
}
