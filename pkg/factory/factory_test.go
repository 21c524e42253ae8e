package factory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRegistry tests registry creation and initialization
func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.builders)
	assert.Empty(t, registry.ListAllServices())
	assert.Empty(t, registry.GetSupportedKinds())
}

// TestRegistry_RegisterBuilder tests builder registration
func TestRegistry_RegisterBuilder(t *testing.T) {
	registry := NewRegistry()
	kind := types.ServiceKind("test-kind")
	builder := &MockBuilder{kind: kind, name: "test"}

	registry.RegisterBuilder(kind, builder)

	assert.Equal(t, []types.ServiceKind{kind}, registry.GetSupportedKinds())
	got, ok := registry.Builder(kind)
	require.True(t, ok)
	assert.Same(t, builder, got)
}

// TestRegistry_Create tests dispatch to the registered builder
func TestRegistry_Create(t *testing.T) {
	registry := NewRegistry()
	kind := types.ServiceKind("test-kind")
	builder := &MockBuilder{kind: kind, name: "test"}
	registry.RegisterBuilder(kind, builder)

	svc, err := registry.Create(context.Background(), kind, types.Params{"unused": 1})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "test", svc.ID())
	assert.Equal(t, int32(1), builder.Builds())
}

// TestRegistry_Create_UnknownKind tests the error for unregistered kinds
func TestRegistry_Create_UnknownKind(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterBuilder(types.ServiceKindSpotify, &MockBuilder{kind: types.ServiceKindSpotify})

	svc, err := registry.Create(context.Background(), "tidal", types.Params{})

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnknownServiceKind))

	var svcErr *types.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, types.ServiceKind("tidal"), svcErr.Kind)
	assert.Contains(t, err.Error(), `service kind "tidal" not registered`)
}

// TestRegistry_Create_NilBuilder tests that a nil registration is treated as unknown
func TestRegistry_Create_NilBuilder(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterBuilder(types.ServiceKindLocal, nil)

	_, err := registry.Create(context.Background(), types.ServiceKindLocal, nil)
	assert.True(t, errors.Is(err, types.ErrUnknownServiceKind))
}

// TestRegistry_Create_PropagatesBuilderError tests that builder errors pass through unchanged
func TestRegistry_Create_PropagatesBuilderError(t *testing.T) {
	registry := NewRegistry()
	builderErr := types.NewMissingParameterError(types.ServiceKindLocal, "local_music_location")
	registry.RegisterBuilder(types.ServiceKindLocal, &MockBuilder{kind: types.ServiceKindLocal, err: builderErr})

	svc, err := registry.Create(context.Background(), types.ServiceKindLocal, nil)

	assert.Nil(t, svc)
	assert.Same(t, builderErr, err)
}

// TestRegistry_RegisterBuilder_Override tests that the last registration wins
func TestRegistry_RegisterBuilder_Override(t *testing.T) {
	registry := NewRegistry()
	first := &MockBuilder{kind: types.ServiceKindSpotify, name: "first"}
	second := &MockBuilder{kind: types.ServiceKindSpotify, name: "second"}

	registry.RegisterBuilder(types.ServiceKindSpotify, first)
	registry.RegisterBuilder(types.ServiceKindSpotify, second)

	svc, err := registry.Create(context.Background(), types.ServiceKindSpotify, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", svc.ID())
	assert.Equal(t, int32(0), first.Builds())
	assert.Equal(t, int32(1), second.Builds())

	builders := registry.ListAllServices()
	require.Len(t, builders, 1)
	assert.Same(t, second, builders[0])
}

// TestRegistry_ListAllServices tests enumeration completeness
func TestRegistry_ListAllServices(t *testing.T) {
	registry := NewRegistry()
	registered := map[types.ServiceKind]*MockBuilder{}
	for _, kind := range types.AllServiceKinds() {
		builder := &MockBuilder{kind: kind, name: string(kind)}
		registered[kind] = builder
		registry.RegisterBuilder(kind, builder)
	}
	// duplicate registration counts once
	registry.RegisterBuilder(types.ServiceKindLocal, registered[types.ServiceKindLocal])

	builders := registry.ListAllServices()
	assert.Len(t, builders, len(registered))
	for _, builder := range registered {
		assert.Contains(t, builders, types.Builder(builder))
	}
	assert.ElementsMatch(t, types.AllServiceKinds(), registry.GetSupportedKinds())
}

// TestRegistry_ConcurrentAccess tests thread safety of registration and creation
func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	var wg sync.WaitGroup
	numGoroutines := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := types.ServiceKind(fmt.Sprintf("kind-%d", i))
			registry.RegisterBuilder(kind, &MockBuilder{kind: kind, name: string(kind)})

			svc, err := registry.Create(context.Background(), kind, nil)
			if assert.NoError(t, err) {
				assert.Equal(t, string(kind), svc.ID())
			}
			_ = registry.ListAllServices()
		}(i)
	}
	wg.Wait()

	assert.Len(t, registry.GetSupportedKinds(), numGoroutines)
}

// TestProvider_Get tests that the provider delegates to the registry
func TestProvider_Get(t *testing.T) {
	registry := NewRegistry()
	builder := &MockBuilder{kind: types.ServiceKindPandora, name: "pandora-mock"}
	registry.RegisterBuilder(types.ServiceKindPandora, builder)
	provider := NewProvider(registry)

	svc, err := provider.Get(context.Background(), types.ServiceKindPandora, nil)
	require.NoError(t, err)
	assert.Equal(t, "pandora-mock", svc.ID())
	assert.Same(t, registry, provider.Registry())

	_, err = provider.Get(context.Background(), types.ServiceKindLocal, nil)
	assert.True(t, errors.Is(err, types.ErrUnknownServiceKind))
}

// TestNewProvider_NilRegistry tests that a nil registry yields an empty one
func TestNewProvider_NilRegistry(t *testing.T) {
	provider := NewProvider(nil)
	require.NotNil(t, provider.Registry())
	assert.Empty(t, provider.Registry().ListAllServices())
}
