package types

import "fmt"

// Params are named construction parameters supplied per request.
// Builders read the keys they need and ignore the rest.
type Params map[string]any

// String returns the string value for key. A missing key, nil value or empty
// string is reported as a missing parameter for the given kind.
func (p Params) String(kind ServiceKind, key string) (string, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return "", NewMissingParameterError(kind, key)
	}

	var value string
	switch v := raw.(type) {
	case string:
		value = v
	case fmt.Stringer:
		value = v.String()
	default:
		return "", NewMissingParameterError(kind, key).
			WithMessage(fmt.Sprintf("parameter %q must be a string, got %T", key, raw))
	}

	if value == "" {
		return "", NewMissingParameterError(kind, key)
	}
	return value, nil
}

// Require checks that every key is present and returns their values in order
func (p Params) Require(kind ServiceKind, keys ...string) ([]string, error) {
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		value, err := p.String(kind, key)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Merge returns a new Params with other layered over p
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p)+len(other))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
