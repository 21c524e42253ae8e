// Package spotify implements the streaming-style music service builder.
// The builder exchanges an application key and secret for a single access
// code, constructs the service once and serves the cached instance afterwards.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/common"
	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

const (
	ParamClientKey    = "spotify_client_key"
	ParamClientSecret = "spotify_client_secret"

	// StubAccessCode is what the default authorizer hands out
	StubAccessCode types.AccessCode = "SPOTIFY_ACCESS_CODE"
)

// AuthorizeFunc exchanges application credentials for an access code
type AuthorizeFunc func(ctx context.Context, app types.AppCredentials) (types.AccessCode, error)

// StubAuthorize returns StubAccessCode for any credentials
func StubAuthorize(_ context.Context, _ types.AppCredentials) (types.AccessCode, error) {
	return StubAccessCode, nil
}

// Option configures a Builder
type Option func(*Builder)

// WithAuthorizer replaces the stub authorizer, e.g. with auth.ClientCredentialsAuthorizer
func WithAuthorizer(fn AuthorizeFunc) Option {
	return func(b *Builder) {
		if fn != nil {
			b.authorize = fn
		}
	}
}

// WithLogger sets the logger services write their status line to
func WithLogger(logger *log.Logger) Option {
	return func(b *Builder) {
		b.logger = common.LoggerOrDefault(logger)
	}
}

// Builder builds and caches the Spotify service
type Builder struct {
	authorize AuthorizeFunc
	logger    *log.Logger
	instance  common.Slot[*Service]
}

// NewBuilder creates a builder with the stub authorizer
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		authorize: StubAuthorize,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Kind implements types.Builder
func (b *Builder) Kind() types.ServiceKind { return types.ServiceKindSpotify }

// RequiredParams implements types.Builder
func (b *Builder) RequiredParams() []string {
	return []string{ParamClientKey, ParamClientSecret}
}

// Build returns the cached service, constructing it on the first call.
// Once cached, params are neither validated nor used.
func (b *Builder) Build(ctx context.Context, params types.Params) (types.Service, error) {
	svc, err := b.BuildService(ctx, params)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// BuildService is Build with the concrete return type
func (b *Builder) BuildService(ctx context.Context, params types.Params) (*Service, error) {
	return b.instance.GetOrCreate(func() (*Service, error) {
		values, err := params.Require(types.ServiceKindSpotify, ParamClientKey, ParamClientSecret)
		if err != nil {
			return nil, err
		}

		code, err := b.authorizeCode(ctx, types.AppCredentials{Key: values[0], Secret: values[1]})
		if err != nil {
			return nil, err
		}

		return NewService(code, b.logger), nil
	})
}

// Authorize implements types.Builder
func (b *Builder) Authorize(ctx context.Context, app types.AppCredentials) (types.Credentials, error) {
	code, err := b.authorizeCode(ctx, app)
	if err != nil {
		return nil, err
	}
	return code, nil
}

func (b *Builder) authorizeCode(ctx context.Context, app types.AppCredentials) (types.AccessCode, error) {
	code, err := b.authorize(ctx, app)
	if err != nil {
		if errors.Is(err, types.ErrAuthorization) {
			return "", err
		}
		return "", types.NewAuthorizationError(types.ServiceKindSpotify, err)
	}
	if code == "" {
		return "", types.NewAuthorizationError(types.ServiceKindSpotify, errors.New("empty access code"))
	}
	return code, nil
}

func (b *Builder) String() string {
	return "SpotifyServiceBuilder()"
}

// Service is the Spotify music service
type Service struct {
	id         string
	accessCode types.AccessCode
	logger     *log.Logger
}

// NewService creates a service using the given access code
func NewService(accessCode types.AccessCode, logger *log.Logger) *Service {
	return &Service{
		id:         common.NewInstanceID(),
		accessCode: accessCode,
		logger:     common.LoggerOrDefault(logger),
	}
}

func (s *Service) Kind() types.ServiceKind      { return types.ServiceKindSpotify }
func (s *Service) ID() string                   { return s.id }
func (s *Service) AccessCode() types.AccessCode { return s.accessCode }

// TestConnection reports the access code in use
func (s *Service) TestConnection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Printf("Accessing Spotify with %s (instance=%s)", s.accessCode, s.id)
	return nil
}

func (s *Service) String() string {
	return fmt.Sprintf("SpotifyService(access_code=%s)", s.accessCode)
}
