// Package pandora implements the recommendation-style music service builder.
// Authorization yields a consumer key/secret pair; the constructed service is
// cached for the lifetime of the builder.
package pandora

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/common"
	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

const (
	ParamClientKey    = "pandora_client_key"
	ParamClientSecret = "pandora_client_secret"

	StubConsumerKey    = "PANDORA_CONSUMER_KEY"
	StubConsumerSecret = "PANDORA_CONSUMER_SECRET"
)

// AuthorizeFunc exchanges application credentials for a consumer pair
type AuthorizeFunc func(ctx context.Context, app types.AppCredentials) (types.ConsumerCredentials, error)

// StubAuthorize returns the stub consumer pair for any credentials
func StubAuthorize(_ context.Context, _ types.AppCredentials) (types.ConsumerCredentials, error) {
	return types.ConsumerCredentials{Key: StubConsumerKey, Secret: StubConsumerSecret}, nil
}

// Option configures a Builder
type Option func(*Builder)

// WithAuthorizer replaces the stub authorizer
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

// Builder builds and caches the Pandora service
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

func (b *Builder) Kind() types.ServiceKind { return types.ServiceKindPandora }

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
		values, err := params.Require(types.ServiceKindPandora, ParamClientKey, ParamClientSecret)
		if err != nil {
			return nil, err
		}

		consumer, err := b.authorizeConsumer(ctx, types.AppCredentials{Key: values[0], Secret: values[1]})
		if err != nil {
			return nil, err
		}

		return NewService(consumer.Key, consumer.Secret, b.logger), nil
	})
}

// Authorize implements types.Builder
func (b *Builder) Authorize(ctx context.Context, app types.AppCredentials) (types.Credentials, error) {
	consumer, err := b.authorizeConsumer(ctx, app)
	if err != nil {
		return nil, err
	}
	return consumer, nil
}

func (b *Builder) authorizeConsumer(ctx context.Context, app types.AppCredentials) (types.ConsumerCredentials, error) {
	consumer, err := b.authorize(ctx, app)
	if err != nil {
		if errors.Is(err, types.ErrAuthorization) {
			return types.ConsumerCredentials{}, err
		}
		return types.ConsumerCredentials{}, types.NewAuthorizationError(types.ServiceKindPandora, err)
	}
	if consumer.Key == "" || consumer.Secret == "" {
		return types.ConsumerCredentials{}, types.NewAuthorizationError(types.ServiceKindPandora,
			errors.New("incomplete consumer credentials"))
	}
	return consumer, nil
}

func (b *Builder) String() string {
	return "PandoraServiceBuilder()"
}

// Service is the Pandora music service
type Service struct {
	id     string
	key    string
	secret string
	logger *log.Logger
}

// NewService creates a service using the given consumer pair
func NewService(consumerKey, consumerSecret string, logger *log.Logger) *Service {
	return &Service{
		id:     common.NewInstanceID(),
		key:    consumerKey,
		secret: consumerSecret,
		logger: common.LoggerOrDefault(logger),
	}
}

func (s *Service) Kind() types.ServiceKind { return types.ServiceKindPandora }
func (s *Service) ID() string              { return s.id }

// Consumer returns the consumer pair the service was built with
func (s *Service) Consumer() types.ConsumerCredentials {
	return types.ConsumerCredentials{Key: s.key, Secret: s.secret}
}

// TestConnection reports the consumer pair in use
func (s *Service) TestConnection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Printf("Accessing Pandora with %s and %s (instance=%s)", s.key, s.secret, s.id)
	return nil
}

func (s *Service) String() string {
	return fmt.Sprintf("PandoraService(consumer_key=%s, consumer_secret=%s)", s.key, s.secret)
}
