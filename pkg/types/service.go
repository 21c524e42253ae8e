package types

import "context"

// Service is a constructed, authorized music service backend
type Service interface {
	// Kind returns the family this service belongs to
	Kind() ServiceKind

	// ID returns the identifier assigned when the instance was constructed.
	// Two values with the same ID are the same instance.
	ID() string

	// TestConnection performs a readiness probe against the backend and
	// emits a status line naming the credential or location in use.
	TestConnection(ctx context.Context) error
}

// Builder authorizes and constructs one kind of Service.
// Each builder owns its caching policy; the registry never caches.
type Builder interface {
	// Kind returns the service kind this builder constructs
	Kind() ServiceKind

	// RequiredParams lists the parameter names Build needs on a cold start
	RequiredParams() []string

	// Build returns a Service for the given parameters. Parameters that the
	// builder does not recognize are ignored.
	Build(ctx context.Context, params Params) (Service, error)

	// Authorize exchanges application credentials for backend credentials
	Authorize(ctx context.Context, app AppCredentials) (Credentials, error)
}
