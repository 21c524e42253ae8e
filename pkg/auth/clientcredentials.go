// Package auth provides authorization helpers for real music service backends.
// It exchanges application credentials for backend credentials over OAuth2
// and throttles those exchanges.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ConsumerSecretField is the token response field carrying the consumer secret
const ConsumerSecretField = "consumer_secret"

// ClientCredentialsConfig configures an OAuth2 client-credentials exchange
type ClientCredentialsConfig struct {
	TokenURL   string
	Scopes     []string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// ClientCredentialsAuthorizer exchanges an app key/secret at an OAuth2 token endpoint.
// Its AccessCode and Consumer methods fit spotify.AuthorizeFunc and pandora.AuthorizeFunc.
type ClientCredentialsAuthorizer struct {
	config ClientCredentialsConfig
}

// NewClientCredentialsAuthorizer creates an authorizer for the given token endpoint
func NewClientCredentialsAuthorizer(config ClientCredentialsConfig) *ClientCredentialsAuthorizer {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: config.Timeout}
	}
	return &ClientCredentialsAuthorizer{config: config}
}

// Token performs the exchange and returns the raw token
func (a *ClientCredentialsAuthorizer) Token(ctx context.Context, app types.AppCredentials) (*oauth2.Token, error) {
	if a.config.TokenURL == "" {
		return nil, errors.New("token URL is required")
	}
	if app.Key == "" || app.Secret == "" {
		return nil, errors.New("application key and secret are required")
	}

	cfg := clientcredentials.Config{
		ClientID:     app.Key,
		ClientSecret: app.Secret,
		TokenURL:     a.config.TokenURL,
		Scopes:       a.config.Scopes,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.config.HTTPClient)
	token, err := cfg.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return token, nil
}

// AccessCode returns the access token as a single access code
func (a *ClientCredentialsAuthorizer) AccessCode(ctx context.Context, app types.AppCredentials) (types.AccessCode, error) {
	token, err := a.Token(ctx, app)
	if err != nil {
		return "", err
	}
	return types.AccessCode(token.AccessToken), nil
}

// Consumer returns the access token as consumer key and the consumer_secret
// response field as consumer secret
func (a *ClientCredentialsAuthorizer) Consumer(ctx context.Context, app types.AppCredentials) (types.ConsumerCredentials, error) {
	token, err := a.Token(ctx, app)
	if err != nil {
		return types.ConsumerCredentials{}, err
	}

	secret, _ := token.Extra(ConsumerSecretField).(string)
	if secret == "" {
		return types.ConsumerCredentials{}, fmt.Errorf("token response has no %s", ConsumerSecretField)
	}
	return types.ConsumerCredentials{Key: token.AccessToken, Secret: secret}, nil
}
