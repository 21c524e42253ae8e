package types

import "fmt"

// ErrorCode categorizes registry and builder errors
type ErrorCode string

const (
	ErrCodeUnknownServiceKind ErrorCode = "unknown_service_kind"
	ErrCodeMissingParameter   ErrorCode = "missing_parameter"
	ErrCodeAuthorization      ErrorCode = "authorization"
)

// Sentinels for errors.Is. Matching is by code only, so
// errors.Is(err, ErrMissingParameter) holds for any missing key.
var (
	ErrUnknownServiceKind = &ServiceError{Code: ErrCodeUnknownServiceKind, Message: "unknown service kind"}
	ErrMissingParameter   = &ServiceError{Code: ErrCodeMissingParameter, Message: "missing parameter"}
	ErrAuthorization      = &ServiceError{Code: ErrCodeAuthorization, Message: "authorization failed"}
)

// ServiceError represents a standardized error from the registry or a builder
type ServiceError struct {
	Code        ErrorCode   // Categorized error code
	Kind        ServiceKind // Service kind involved
	Param       string      // Missing parameter name (missing_parameter only)
	Message     string      // Human-readable message
	OriginalErr error       // Wrapped original error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("[%s] %s (code=%s)", e.Kind, e.Message, e.Code)
	if e.OriginalErr != nil {
		msg += ": " + e.OriginalErr.Error()
	}
	return msg
}

// Unwrap returns the original error for errors.Is/As
func (e *ServiceError) Unwrap() error {
	return e.OriginalErr
}

// Is reports whether target is a ServiceError with the same code
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage sets the message field and returns the error for chaining
func (e *ServiceError) WithMessage(message string) *ServiceError {
	e.Message = message
	return e
}

// WithOriginalErr sets the original error field and returns the error for chaining
func (e *ServiceError) WithOriginalErr(err error) *ServiceError {
	e.OriginalErr = err
	return e
}

// NewUnknownServiceKindError creates an error for a kind with no registered builder
func NewUnknownServiceKindError(kind ServiceKind) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeUnknownServiceKind,
		Kind:    kind,
		Message: fmt.Sprintf("service kind %q not registered", kind),
	}
}

// NewMissingParameterError creates an error naming a required parameter that was not supplied
func NewMissingParameterError(kind ServiceKind, param string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeMissingParameter,
		Kind:    kind,
		Param:   param,
		Message: fmt.Sprintf("missing required parameter %q", param),
	}
}

// NewAuthorizationError creates an error for a failed credential exchange
func NewAuthorizationError(kind ServiceKind, err error) *ServiceError {
	return &ServiceError{
		Code:        ErrCodeAuthorization,
		Kind:        kind,
		Message:     "authorization failed",
		OriginalErr: err,
	}
}
