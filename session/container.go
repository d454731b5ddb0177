package session

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
)

type subscriber struct {
	selector Selector
	fn       func(State)
	last     any
}

// storageSession implements Session over a Storage. Mutations are forwarded
// as patches; the storage's own subscription feed drives the selector-level
// fan-out, so changes made directly through the storage are observed too.
type storageSession struct {
	id      string
	storage Storage

	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
}

// NewMemorySession creates a Session backed by in-memory storage, seeded
// from the configured initial content and metadata. The session is assigned
// a unique UUIDv7 identifier.
func NewMemorySession(cfg *Config) Session {
	if cfg == nil {
		cfg = &Config{}
	}
	initial := State{
		Content:  cfg.InitialContent,
		Metadata: cfg.InitialMetadata,
	}
	return NewStorageSession(NewMemoryStorage(initial))
}

// NewStorageSession creates a Session over any Storage implementation.
func NewStorageSession(storage Storage) Session {
	s := &storageSession{
		id:      uuid.Must(uuid.NewV7()).String(),
		storage: storage,
		subs:    make(map[int]*subscriber),
	}
	storage.Subscribe(s.fanOut)
	return s
}

func (s *storageSession) ID() string {
	return s.id
}

func (s *storageSession) Snapshot() State {
	return s.storage.Snapshot()
}

func (s *storageSession) UpdateContent(value string) {
	s.storage.Apply(Patch{Content: &value})
}

func (s *storageSession) AddAttachment(a Attachment) {
	s.storage.Apply(Patch{AddAttachment: &a})
}

func (s *storageSession) RemoveAttachment(id string) {
	s.storage.Apply(Patch{RemoveAttachment: &id})
}

func (s *storageSession) UpdateMetadata(key string, value any) {
	s.storage.Apply(Patch{Metadata: map[string]any{key: value}})
}

func (s *storageSession) SetSubmitting(submitting bool) {
	s.storage.Apply(Patch{Submitting: &submitting})
}

func (s *storageSession) Reset() {
	s.storage.Apply(Patch{Reset: true})
}

func (s *storageSession) Subscribe(selector Selector, fn func(State)) (cancel func()) {
	sub := &subscriber{selector: selector, fn: fn}
	if selector != nil {
		sub.last = selector(s.storage.Snapshot())
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// fanOut runs after every storage mutation. Whole-state subscribers always
// fire; selector subscribers fire only when their selected value changed by
// value comparison against the previous notification.
func (s *storageSession) fanOut(state State) {
	s.mu.Lock()
	notify := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.selector == nil {
			notify = append(notify, sub.fn)
			continue
		}
		selected := sub.selector(state)
		if !reflect.DeepEqual(selected, sub.last) {
			sub.last = selected
			notify = append(notify, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(state)
	}
}
