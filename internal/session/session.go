package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
)

// IdentityAPI is the slice of the API client the provider needs.
type IdentityAPI interface {
	CurrentUser(ctx context.Context) (*identity.Identity, error)
}

// Provider fetches the authenticated identity once and caches it for the
// lifetime of the process. Consumers subscribe for changes instead of
// refetching; invalidation is explicit on logout.
type Provider struct {
	api    IdentityAPI
	logger *slog.Logger

	mu      sync.Mutex
	cached  *identity.Identity
	fetched bool
	subs    []func(*identity.Identity)
}

func NewProvider(api IdentityAPI, logger *slog.Logger) *Provider {
	return &Provider{
		api:    api,
		logger: logger,
	}
}

// Identity returns the cached identity, fetching it on first use. A nil
// identity with nil error never happens: unauthenticated sessions surface the
// backend's 401 as a typed error.
func (p *Provider) Identity(ctx context.Context) (*identity.Identity, error) {
	p.mu.Lock()
	if p.fetched {
		cached := p.cached
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// Refresh refetches the identity unconditionally and notifies subscribers.
func (p *Provider) Refresh(ctx context.Context) (*identity.Identity, error) {
	ident, err := p.api.CurrentUser(ctx)
	if err != nil {
		p.logger.Debug("identity fetch failed", "error", err)
		return nil, err
	}

	p.set(ident)
	return ident, nil
}

// Established records an identity obtained as a side effect of login or
// signup verification, avoiding an extra /me/ round trip.
func (p *Provider) Established(ident *identity.Identity) {
	p.set(ident)
}

// Invalidate drops the cached identity, notifying subscribers with nil.
// Called on logout.
func (p *Provider) Invalidate() {
	p.set(nil)
}

// Subscribe registers fn to run on every identity change. Subscribers are
// called synchronously while the update is applied.
func (p *Provider) Subscribe(fn func(*identity.Identity)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

func (p *Provider) set(ident *identity.Identity) {
	p.mu.Lock()
	p.cached = ident
	p.fetched = ident != nil
	subs := make([]func(*identity.Identity), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(ident)
	}
}
