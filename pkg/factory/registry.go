package factory

import (
	"log"

	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/local"
	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/pandora"
	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/spotify"
	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

// DefaultOptions configures the default builders. Nil authorizers keep the stubs.
type DefaultOptions struct {
	Logger             *log.Logger
	SpotifyAuthorizer  spotify.AuthorizeFunc
	PandoraAuthorizer  pandora.AuthorizeFunc
	StrictLocalStorage bool
}

// RegisterDefaultBuilders registers the spotify, pandora and local builders
func RegisterDefaultBuilders(registry *Registry, opts DefaultOptions) {
	registry.RegisterBuilder(types.ServiceKindSpotify, spotify.NewBuilder(
		spotify.WithLogger(opts.Logger),
		spotify.WithAuthorizer(opts.SpotifyAuthorizer),
	))

	registry.RegisterBuilder(types.ServiceKindPandora, pandora.NewBuilder(
		pandora.WithLogger(opts.Logger),
		pandora.WithAuthorizer(opts.PandoraAuthorizer),
	))

	localOpts := []local.Option{local.WithLogger(opts.Logger)}
	if opts.StrictLocalStorage {
		localOpts = append(localOpts, local.WithStrictLocation())
	}
	registry.RegisterBuilder(types.ServiceKindLocal, local.NewBuilder(localOpts...))
}

// NewDefaultProvider creates a provider with the default builders registered
func NewDefaultProvider(opts DefaultOptions) *Provider {
	registry := NewRegistry()
	RegisterDefaultBuilders(registry, opts)
	return NewProvider(registry)
}
