package advisor

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the external text-generation service.
type Kind string

const (
	KindUnavailable       Kind = "unavailable"
	KindInvalidCredential Kind = "invalid_credential"
	KindModelNotFound     Kind = "model_not_found"
	KindPermissionDenied  Kind = "permission_denied"
	KindQuotaExceeded     Kind = "quota_exceeded"
	KindEmptyResponse     Kind = "empty_response"
	KindUnknown           Kind = "unknown"
)

// Error is a typed advisory failure. Message preserves the raw detail from the
// external service for diagnostics.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("advisor: %s: %s", e.Kind, e.Message)
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the Kind from an error, defaulting to KindUnknown for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var advErr *Error
	if errors.As(err, &advErr) {
		return advErr.Kind
	}

	return KindUnknown
}
