package session

import "sync"

// Patch is a partial state update applied atomically by a Storage. Nil
// pointer fields are left untouched. Reset is applied first, so a patch can
// clear the draft and set new values in one step.
type Patch struct {
	Reset            bool
	Content          *string
	AddAttachment    *Attachment
	RemoveAttachment *string
	Metadata         map[string]any
	Submitting       *bool
}

// Storage is the pluggable state-storage strategy behind a Session. The
// container depends only on this interface; any implementation with
// atomic Apply and synchronous post-mutation notification is
// interchangeable.
type Storage interface {
	// Snapshot returns a defensive copy of the stored state.
	Snapshot() State
	// Apply merges a partial update into the stored state and then
	// notifies all subscribers synchronously with the new state.
	Apply(p Patch)
	// Subscribe registers fn to run after every mutation. The returned
	// cancel func removes the subscription.
	Subscribe(fn func(State)) (cancel func())
}

type memoryStorage struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]func(State)
	nextID int
}

// NewMemoryStorage creates a Storage backed by an in-process state record.
func NewMemoryStorage(initial State) Storage {
	if initial.Metadata == nil {
		initial.Metadata = make(map[string]any)
	}
	return &memoryStorage{
		state: initial.Clone(),
		subs:  make(map[int]func(State)),
	}
}

func (m *memoryStorage) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

func (m *memoryStorage) Apply(p Patch) {
	m.mu.Lock()

	if p.Reset {
		m.state.Content = ""
		m.state.Attachments = nil
		m.state.Metadata = make(map[string]any)
	}
	if p.Content != nil {
		m.state.Content = *p.Content
	}
	if p.AddAttachment != nil {
		m.state.Attachments = append(m.state.Attachments, *p.AddAttachment)
	}
	if p.RemoveAttachment != nil {
		for i, a := range m.state.Attachments {
			if a.ID == *p.RemoveAttachment {
				m.state.Attachments = append(m.state.Attachments[:i], m.state.Attachments[i+1:]...)
				break
			}
		}
	}
	for k, v := range p.Metadata {
		m.state.Metadata[k] = v
	}
	if p.Submitting != nil {
		m.state.Submitting = *p.Submitting
	}

	snapshot := m.state.Clone()
	subs := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	// Notify outside the lock so subscribers can read back into the store.
	for _, fn := range subs {
		fn(snapshot)
	}
}

func (m *memoryStorage) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
