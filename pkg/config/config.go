// Package config loads the music service configuration file and turns it into
// construction parameters and factory options.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cecil-the-coder/music-provider-kit/pkg/auth"
	"github.com/cecil-the-coder/music-provider-kit/pkg/factory"
	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/local"
	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/pandora"
	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/spotify"
	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Config Structures
// =============================================================================

// Config represents the complete configuration structure
type Config struct {
	Spotify BackendConfig `yaml:"spotify"`
	Pandora BackendConfig `yaml:"pandora"`
	Local   LocalConfig   `yaml:"local"`

	// AuthorizeRPS caps token exchanges per second for real authorizers (0 = unlimited)
	AuthorizeRPS float64 `yaml:"authorize_rps,omitempty"`

	// Extra params are passed through to builders verbatim; unknown keys are ignored
	Extra map[string]any `yaml:"params,omitempty"`
}

// BackendConfig holds the application credentials of an authorized backend
type BackendConfig struct {
	ClientKey    string `yaml:"client_key"`
	ClientSecret string `yaml:"client_secret"`

	// TokenURL enables the OAuth2 client-credentials authorizer instead of the stub
	TokenURL string   `yaml:"token_url,omitempty"`
	Scopes   []string `yaml:"scopes,omitempty"`
}

// LocalConfig holds the local filesystem backend settings
type LocalConfig struct {
	Location string `yaml:"location"`
	Strict   bool   `yaml:"strict,omitempty"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Spotify: BackendConfig{
			ClientKey:    "THE_SPOTIFY_CLIENT_KEY",
			ClientSecret: "THE_SPOTIFY_CLIENT_SECRET",
		},
		Pandora: BackendConfig{
			ClientKey:    "THE_PANDORA_CLIENT_KEY",
			ClientSecret: "THE_PANDORA_CLIENT_SECRET",
		},
		Local: LocalConfig{
			Location: "/usr/data/music",
		},
	}
}

// =============================================================================
// Configuration Loading
// =============================================================================

// Load reads and parses a YAML configuration file
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML over the default configuration; fields absent from data keep their defaults
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return config, nil
}

// Environment variables consulted by ApplyEnv
const (
	EnvSpotifyClientKey    = "MUSIC_SPOTIFY_CLIENT_KEY"
	EnvSpotifyClientSecret = "MUSIC_SPOTIFY_CLIENT_SECRET"
	EnvPandoraClientKey    = "MUSIC_PANDORA_CLIENT_KEY"
	EnvPandoraClientSecret = "MUSIC_PANDORA_CLIENT_SECRET"
	EnvLocalLocation       = "MUSIC_LOCAL_LOCATION"
	EnvAuthorizeRPS        = "MUSIC_AUTHORIZE_RPS"
)

// ApplyEnv overrides fields from the environment using lookup (os.LookupEnv in production)
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvSpotifyClientKey, &c.Spotify.ClientKey},
		{EnvSpotifyClientSecret, &c.Spotify.ClientSecret},
		{EnvPandoraClientKey, &c.Pandora.ClientKey},
		{EnvPandoraClientSecret, &c.Pandora.ClientSecret},
		{EnvLocalLocation, &c.Local.Location},
	}
	for _, o := range overrides {
		if value, ok := lookup(o.env); ok && value != "" {
			*o.target = value
		}
	}

	if value, ok := lookup(EnvAuthorizeRPS); ok && value != "" {
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAuthorizeRPS, value, err)
		}
		c.AuthorizeRPS = rps
	}
	return nil
}

// =============================================================================
// Builder Wiring
// =============================================================================

// Params flattens the configuration into builder parameter names.
// Pass-through params are applied first so the typed fields win.
func (c *Config) Params() types.Params {
	params := types.Params{}
	for k, v := range c.Extra {
		params[k] = v
	}

	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	set(spotify.ParamClientKey, c.Spotify.ClientKey)
	set(spotify.ParamClientSecret, c.Spotify.ClientSecret)
	set(pandora.ParamClientKey, c.Pandora.ClientKey)
	set(pandora.ParamClientSecret, c.Pandora.ClientSecret)
	set(local.ParamLocation, c.Local.Location)

	return params
}

// ProviderOptions builds factory options, swapping in OAuth2 authorizers for
// backends that configure a token URL
func (c *Config) ProviderOptions(logger *log.Logger) factory.DefaultOptions {
	opts := factory.DefaultOptions{
		Logger:             logger,
		StrictLocalStorage: c.Local.Strict,
	}

	if c.Spotify.TokenURL != "" {
		authorizer := auth.NewClientCredentialsAuthorizer(auth.ClientCredentialsConfig{
			TokenURL: c.Spotify.TokenURL,
			Scopes:   c.Spotify.Scopes,
		})
		opts.SpotifyAuthorizer = spotify.AuthorizeFunc(auth.RateLimited(authorizer.AccessCode, auth.NewLimiter(c.AuthorizeRPS)))
	}

	if c.Pandora.TokenURL != "" {
		authorizer := auth.NewClientCredentialsAuthorizer(auth.ClientCredentialsConfig{
			TokenURL: c.Pandora.TokenURL,
			Scopes:   c.Pandora.Scopes,
		})
		opts.PandoraAuthorizer = pandora.AuthorizeFunc(auth.RateLimited(authorizer.Consumer, auth.NewLimiter(c.AuthorizeRPS)))
	}

	return opts
}
