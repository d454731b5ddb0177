// Package handler defines the submit-handler boundary and a global registry
// of named handlers so composers can resolve their delivery side effect from
// configuration.
package handler

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler performs the actual submission side effect (an API call, a queue
// write, a transcript append). It receives the session snapshot merged with
// any caller extras: "content", "attachments", "metadata", plus extra keys.
// A nil return means success; any error means the submission failed.
type Handler func(ctx context.Context, payload map[string]any) error

type registry struct {
	entries map[string]Handler
	mu      sync.RWMutex
}

var register = &registry{
	entries: make(map[string]Handler),
}

// Register adds a named handler to the global registry.
// Returns ErrAlreadyExists if the name is taken; use Replace to swap an
// existing handler. Thread-safe for concurrent registration.
func Register(name string, h Handler) error {
	if name == "" {
		return ErrEmptyName
	}
	if h == nil {
		return ErrNilHandler
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.entries[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	register.entries[name] = h
	return nil
}

// Replace swaps an existing named handler.
// Returns ErrNotFound if no handler with the given name is registered.
func Replace(name string, h Handler) error {
	if name == "" {
		return ErrEmptyName
	}
	if h == nil {
		return ErrNilHandler
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.entries[name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	register.entries[name] = h
	return nil
}

// Get retrieves a handler by name.
func Get(name string) (Handler, bool) {
	register.mu.RLock()
	defer register.mu.RUnlock()

	h, exists := register.entries[name]
	return h, exists
}

// List returns the registered handler names, sorted.
func List() []string {
	register.mu.RLock()
	defer register.mu.RUnlock()

	names := make([]string, 0, len(register.entries))
	for name := range register.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke dispatches a payload to the named handler.
// Returns ErrNotFound if the handler is not registered; handler errors are
// wrapped with the handler name for context.
func Invoke(ctx context.Context, name string, payload map[string]any) error {
	register.mu.RLock()
	h, exists := register.entries[name]
	register.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := h(ctx, payload); err != nil {
		return fmt.Errorf("handler %s failed: %w", name, err)
	}
	return nil
}
