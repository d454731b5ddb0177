package session

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Attachment is a single file or media reference attached to a draft.
// IDs are caller-generated; NewAttachmentID provides unique ones.
type Attachment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// State is a point-in-time view of a composition session. Values returned
// from Snapshot are defensive copies; mutating them does not affect the
// session.
type State struct {
	Content     string         `json:"content"`
	Attachments []Attachment   `json:"attachments"`
	Metadata    map[string]any `json:"metadata"`
	Submitting  bool           `json:"-"`
}

// Clone returns an independent copy of the state. The attachment slice and
// metadata map are copied; metadata values are shared (shallow clone).
func (s State) Clone() State {
	return State{
		Content:     s.Content,
		Attachments: slices.Clone(s.Attachments),
		Metadata:    maps.Clone(s.Metadata),
		Submitting:  s.Submitting,
	}
}

// NewAttachmentID returns a unique attachment identifier (UUIDv7).
func NewAttachmentID() string {
	return uuid.Must(uuid.NewV7()).String()
}
