// Package factory provides service factory functionality for music services.
// It includes registration, creation, and enumeration of service builders.
package factory

import (
	"context"
	"sync"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

// Registry maps service kinds to builders and dispatches creation requests.
// It holds no service state; caching is owned by the builders.
type Registry struct {
	builders map[types.ServiceKind]types.Builder
	mutex    sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[types.ServiceKind]types.Builder),
	}
}

// RegisterBuilder registers a builder for a service kind.
// Registering a kind twice replaces the earlier builder.
func (r *Registry) RegisterBuilder(kind types.ServiceKind, builder types.Builder) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.builders[kind] = builder
}

// Create looks up the builder for kind and invokes it with params. The
// builder's result and error are returned unchanged.
func (r *Registry) Create(ctx context.Context, kind types.ServiceKind, params types.Params) (types.Service, error) {
	r.mutex.RLock()
	builder, exists := r.builders[kind]
	r.mutex.RUnlock()

	if !exists || builder == nil {
		return nil, types.NewUnknownServiceKindError(kind)
	}

	return builder.Build(ctx, params)
}

// Builder returns the builder registered for kind
func (r *Registry) Builder(kind types.ServiceKind) (types.Builder, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	builder, exists := r.builders[kind]
	return builder, exists
}

// ListAllServices returns every registered builder, one per kind, in no particular order
func (r *Registry) ListAllServices() []types.Builder {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	builders := make([]types.Builder, 0, len(r.builders))
	for _, builder := range r.builders {
		builders = append(builders, builder)
	}

	return builders
}

// GetSupportedKinds returns all registered service kinds
func (r *Registry) GetSupportedKinds() []types.ServiceKind {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	kinds := make([]types.ServiceKind, 0, len(r.builders))
	for kind := range r.builders {
		kinds = append(kinds, kind)
	}

	return kinds
}
