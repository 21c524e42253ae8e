package factory

import (
	"context"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

// Provider is the public entry point for obtaining services.
// Construct one per process and pass it to whatever needs services.
type Provider struct {
	registry *Registry
}

// NewProvider wraps an existing registry
func NewProvider(registry *Registry) *Provider {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Provider{registry: registry}
}

// Get returns the service for kind, see Registry.Create
func (p *Provider) Get(ctx context.Context, kind types.ServiceKind, params types.Params) (types.Service, error) {
	return p.registry.Create(ctx, kind, params)
}

// Registry returns the underlying registry
func (p *Provider) Registry() *Registry {
	return p.registry
}
