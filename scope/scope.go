// Package scope makes one Composer reachable to arbitrarily deep call trees
// without explicit parameter threading. A Provider attached to a context is
// the scoped registry: it owns exactly one lazily-created Composer for the
// lifetime of the scope, and Use resolves the nearest enclosing one.
//
// Nesting is deliberate injection, not shared globals: attaching a second
// Provider shadows the outer scope with an independent session.
package scope

import (
	"context"
	"fmt"
	"sync"

	"github.com/messagekit/composer/composer"
	"github.com/messagekit/composer/session"
)

type ctxKey struct{}

// Provider owns the single Composer of one scope. The Composer is created
// on first use and never replaced, no matter how often the scope is
// re-entered or the provider is re-attached.
type Provider struct {
	cfg  composer.Config
	opts []composer.Option

	once sync.Once
	c    *composer.Composer
	err  error
}

// NewProvider creates a Provider that will build its Composer from cfg and
// opts on first use. A nil cfg means defaults.
func NewProvider(cfg *composer.Config, opts ...composer.Option) *Provider {
	p := &Provider{opts: opts}
	if cfg != nil {
		p.cfg = *cfg
	} else {
		p.cfg = composer.DefaultConfig()
	}
	return p
}

// Composer returns the provider's Composer, creating it on first call.
func (p *Provider) Composer() (*composer.Composer, error) {
	p.once.Do(func() {
		p.c, p.err = composer.New(&p.cfg, p.opts...)
	})
	return p.c, p.err
}

// Attach binds the provider to a derived context, establishing a scope.
// Attaching inside an existing scope shadows it.
func Attach(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Use resolves the Composer of the nearest enclosing scope.
//
// Calling Use outside any scope is a programmer error and panics; so does a
// provider whose deferred construction fails. There is no recoverable
// runtime condition here: the fix is to Attach a Provider above the caller.
func Use(ctx context.Context) *composer.Composer {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	if !ok {
		panic(ErrNoScope)
	}

	c, err := p.Composer()
	if err != nil {
		panic(fmt.Errorf("scope: composer construction failed: %w", err))
	}
	return c
}

// UseSession is shorthand for Use(ctx).Session().
func UseSession(ctx context.Context) session.Session {
	return Use(ctx).Session()
}
