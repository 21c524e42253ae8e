package types

import "strings"

// ServiceKind represents the family of a music service backend
type ServiceKind string

const (
	// ServiceKindSpotify is the streaming-style backend (access code authorization)
	ServiceKindSpotify ServiceKind = "spotify"
	// ServiceKindPandora is the recommendation-style backend (consumer key/secret authorization)
	ServiceKindPandora ServiceKind = "pandora"
	// ServiceKindLocal is the local filesystem backend (no authorization)
	ServiceKindLocal ServiceKind = "local"
)

// AllServiceKinds returns the built-in service kinds in a stable order
func AllServiceKinds() []ServiceKind {
	return []ServiceKind{ServiceKindSpotify, ServiceKindPandora, ServiceKindLocal}
}

// String implements fmt.Stringer
func (k ServiceKind) String() string {
	return string(k)
}

// ParseServiceKind converts user-supplied text (CLI args, config keys) into a ServiceKind.
// Matching is case-insensitive; anything else returns an unknown service kind error.
func ParseServiceKind(s string) (ServiceKind, error) {
	kind := ServiceKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllServiceKinds() {
		if kind == known {
			return known, nil
		}
	}
	return "", NewUnknownServiceKindError(ServiceKind(s))
}
