// Package composer binds a composition session to a submit handler and an
// observer, implementing the submit/reset-on-success policy around the raw
// state container.
//
// A Composer initializes from configuration via New, creating its session
// internally and resolving its handler and observer by name. Functional
// options allow overrides of any collaborator.
//
//	c, err := composer.New(&cfg)
//	c.Session().UpdateContent("Hello team!")
//	c.Submit(ctx, map[string]any{"channel": "general"})
package composer

import (
	"fmt"
	"maps"
	"sync"

	"github.com/messagekit/composer/handler"
	"github.com/messagekit/composer/observability"
	"github.com/messagekit/composer/session"
)

// Option configures a Composer after config-driven initialization.
// Applied by New after cold start; overrides replace config-created defaults.
type Option func(*Composer)

// WithSession overrides the config-created session.
func WithSession(s session.Session) Option {
	return func(c *Composer) { c.session = s }
}

// WithObserver overrides the config-resolved observer.
func WithObserver(o observability.Observer) Option {
	return func(c *Composer) { c.observer = o }
}

// WithHandler binds a submit handler directly, bypassing the registry.
func WithHandler(h handler.Handler) Option {
	return func(c *Composer) { c.handler = h }
}

// WithExtra merges a key into every submit payload the composer produces.
// Composed variants use this to stamp channel, thread, or message identity.
func WithExtra(key string, value any) Option {
	return func(c *Composer) {
		if c.extra == nil {
			c.extra = make(map[string]any)
		}
		c.extra[key] = value
	}
}

// Composer owns one composition session and the policy around submitting it.
type Composer struct {
	session  session.Session
	observer observability.Observer

	mu      sync.RWMutex
	handler handler.Handler
	extra   map[string]any
}

// New creates a Composer from configuration. The session is created from the
// config's session section; the handler and observer are resolved by name
// through their registries. Options applied after initialization can
// override any collaborator.
func New(cfg *Config, opts ...Option) (*Composer, error) {
	if cfg == nil {
		defaults := DefaultConfig()
		cfg = &defaults
	}

	sesh, err := session.New(&cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	observerName := cfg.Observer
	if observerName == "" {
		observerName = "slog"
	}
	observer, err := observability.GetObserver(observerName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	c := &Composer{
		session:  sesh,
		observer: observer,
		extra:    maps.Clone(cfg.Extra),
	}

	if cfg.Handler != "" {
		h, ok := handler.Get(cfg.Handler)
		if !ok {
			return nil, fmt.Errorf("%w: %s", handler.ErrNotFound, cfg.Handler)
		}
		c.handler = h
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Session returns the composer's state container.
func (c *Composer) Session() session.Session {
	return c.session
}

// SetHandler re-binds the submit handler. Submissions started after the call
// use the new handler; a submission already in flight keeps the one it
// captured.
func (c *Composer) SetHandler(h handler.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = h
}
