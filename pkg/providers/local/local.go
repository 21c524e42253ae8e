// Package local implements the local-filesystem music service builder.
// A location string is cheap and needs no authorization, so every Build
// constructs a fresh service.
package local

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cecil-the-coder/music-provider-kit/pkg/providers/common"
	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

const ParamLocation = "local_music_location"

// Option configures a Builder
type Option func(*Builder)

// WithLogger sets the logger services write their status line to
func WithLogger(logger *log.Logger) Option {
	return func(b *Builder) {
		b.logger = common.LoggerOrDefault(logger)
	}
}

// WithStrictLocation makes TestConnection fail when the location is not an existing directory
func WithStrictLocation() Option {
	return func(b *Builder) {
		b.strict = true
	}
}

// Builder builds local music services. It does not cache.
type Builder struct {
	logger *log.Logger
	strict bool
}

// NewBuilder creates a local builder
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: log.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Kind() types.ServiceKind { return types.ServiceKindLocal }

func (b *Builder) RequiredParams() []string { return []string{ParamLocation} }

// Build constructs a new service on every call
func (b *Builder) Build(_ context.Context, params types.Params) (types.Service, error) {
	location, err := params.String(types.ServiceKindLocal, ParamLocation)
	if err != nil {
		return nil, err
	}
	svc := NewService(location, b.logger)
	svc.strict = b.strict
	return svc, nil
}

// Authorize always succeeds; the location is used directly
func (b *Builder) Authorize(_ context.Context, _ types.AppCredentials) (types.Credentials, error) {
	return types.NoCredentials{}, nil
}

func (b *Builder) String() string {
	return "LocalServiceBuilder()"
}

// Service reads music from a directory on the local filesystem
type Service struct {
	id       string
	location string
	strict   bool
	logger   *log.Logger
}

// NewService creates a service rooted at location
func NewService(location string, logger *log.Logger) *Service {
	return &Service{
		id:       common.NewInstanceID(),
		location: location,
		logger:   common.LoggerOrDefault(logger),
	}
}

func (s *Service) Kind() types.ServiceKind { return types.ServiceKindLocal }
func (s *Service) ID() string              { return s.id }
func (s *Service) Location() string        { return s.location }

// TestConnection reports the location in use. In strict mode the location
// must also be an existing directory.
func (s *Service) TestConnection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.strict {
		info, err := os.Stat(s.location)
		if err != nil {
			return fmt.Errorf("local music location %s: %w", s.location, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("local music location %s is not a directory", s.location)
		}
	}
	s.logger.Printf("Accessing Local music at %s (instance=%s)", s.location, s.id)
	return nil
}

func (s *Service) String() string {
	return fmt.Sprintf("LocalService(location=%s)", s.location)
}
