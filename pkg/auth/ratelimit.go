package auth

import (
	"context"
	"fmt"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
	"golang.org/x/time/rate"
)

// AuthorizeFunc is the shape shared by the builders' authorizers
type AuthorizeFunc[C any] func(ctx context.Context, app types.AppCredentials) (C, error)

// RateLimited wraps an authorizer so exchanges never exceed the limiter's rate.
// Waiting honours ctx. A nil limiter returns authorize unchanged.
func RateLimited[C any](authorize AuthorizeFunc[C], limiter *rate.Limiter) AuthorizeFunc[C] {
	if limiter == nil {
		return authorize
	}
	return func(ctx context.Context, app types.AppCredentials) (C, error) {
		if err := limiter.Wait(ctx); err != nil {
			var zero C
			return zero, fmt.Errorf("authorization rate limit: %w", err)
		}
		return authorize(ctx, app)
	}
}

// NewLimiter returns a limiter allowing rps exchanges per second with a burst
// of one, or nil when rps is not positive
func NewLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}
