package factory

import (
	"context"
	"sync/atomic"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
)

// MockService implements types.Service
type MockService struct {
	id   string
	kind types.ServiceKind
}

func (s *MockService) Kind() types.ServiceKind { return s.kind }
func (s *MockService) ID() string              { return s.id }

func (s *MockService) TestConnection(ctx context.Context) error {
	return ctx.Err()
}

// MockBuilder implements types.Builder, building a fresh MockService per call
type MockBuilder struct {
	kind   types.ServiceKind
	name   string
	err    error
	builds int32
}

func (b *MockBuilder) Kind() types.ServiceKind  { return b.kind }
func (b *MockBuilder) RequiredParams() []string { return nil }

func (b *MockBuilder) Build(ctx context.Context, params types.Params) (types.Service, error) {
	atomic.AddInt32(&b.builds, 1)
	if b.err != nil {
		return nil, b.err
	}
	return &MockService{id: b.name, kind: b.kind}, nil
}

func (b *MockBuilder) Authorize(ctx context.Context, app types.AppCredentials) (types.Credentials, error) {
	return types.NoCredentials{}, nil
}

// Builds returns how many times Build was called
func (b *MockBuilder) Builds() int32 {
	return atomic.LoadInt32(&b.builds)
}
