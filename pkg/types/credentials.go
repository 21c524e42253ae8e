package types

// AuthMethod represents the shape of credentials a backend hands out
type AuthMethod string

const (
	AuthMethodAccessCode AuthMethod = "access_code"
	AuthMethodConsumer   AuthMethod = "consumer"
	AuthMethodNone       AuthMethod = "none"
)

// AppCredentials are the caller's application credentials
type AppCredentials struct {
	Key    string `json:"key" yaml:"key"`
	Secret string `json:"secret" yaml:"secret"`
}

// Credentials are the backend credentials derived by Builder.Authorize
type Credentials interface {
	AuthMethod() AuthMethod
}

// AccessCode is a single opaque access token
type AccessCode string

// AuthMethod implements Credentials
func (AccessCode) AuthMethod() AuthMethod { return AuthMethodAccessCode }

// ConsumerCredentials is a consumer key/secret pair
type ConsumerCredentials struct {
	Key    string `json:"consumer_key"`
	Secret string `json:"consumer_secret"`
}

// AuthMethod implements Credentials
func (ConsumerCredentials) AuthMethod() AuthMethod { return AuthMethodConsumer }

// NoCredentials is returned by builders whose backend needs no authorization
type NoCredentials struct{}

// AuthMethod implements Credentials
func (NoCredentials) AuthMethod() AuthMethod { return AuthMethodNone }
