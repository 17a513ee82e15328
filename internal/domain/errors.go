package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. Each kind maps to exactly one HTTP status.
type Kind int

// Failure kinds. KindInternal is the fallback for anything that was not
// constructed through this taxonomy.
const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInvalidData
	KindUnauthenticated
	KindValidationSchema
)

var kindNames = map[Kind]string{
	KindInternal:         "internal",
	KindNotFound:         "not_found",
	KindForbidden:        "forbidden",
	KindConflict:         "conflict",
	KindInvalidData:      "invalid_data",
	KindUnauthenticated:  "unauthenticated",
	KindValidationSchema: "validation_schema",
}

var kindStatuses = map[Kind]int{
	KindInternal:         http.StatusInternalServerError,
	KindNotFound:         http.StatusNotFound,
	KindForbidden:        http.StatusForbidden,
	KindConflict:         http.StatusConflict,
	KindInvalidData:      http.StatusBadRequest,
	KindUnauthenticated:  http.StatusUnauthorized,
	KindValidationSchema: http.StatusBadRequest,
}

// String returns the snake_case name of the kind, used in logs and metrics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindInternal]
}

// Status returns the HTTP status code for the kind.
// Unknown kinds map to 500.
func (k Kind) Status() int {
	if status, ok := kindStatuses[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is a classified failure carrying a user-facing message.
// It is created where the problem is detected and travels unchanged
// up to the error normalizer.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Status returns the HTTP status code associated with the failure.
func (e *Error) Status() int {
	return e.Kind.Status()
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewNotFoundError creates a failure for a missing entity or route.
func NewNotFoundError(message string) *Error { return newError(KindNotFound, message) }

// NewForbiddenError creates a failure for an operation on a resource the
// caller does not own.
func NewForbiddenError(message string) *Error { return newError(KindForbidden, message) }

// NewConflictError creates a failure for a uniqueness violation.
func NewConflictError(message string) *Error { return newError(KindConflict, message) }

// NewInvalidDataError creates a failure for data the store refused.
func NewInvalidDataError(message string) *Error { return newError(KindInvalidData, message) }

// NewUnauthenticatedError creates a failure for missing or bad credentials.
func NewUnauthenticatedError(message string) *Error { return newError(KindUnauthenticated, message) }

// NewValidationError creates a failure for a request that does not match
// its declared schema.
func NewValidationError(message string) *Error { return newError(KindValidationSchema, message) }

// NewInternalError creates an internal failure with a message safe to show.
func NewInternalError(message string) *Error { return newError(KindInternal, message) }

// AsError extracts a *Error from anywhere in err's chain.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a failure of the given kind.
func IsKind(err error, kind Kind) bool {
	domainErr, ok := AsError(err)
	return ok && domainErr.Kind == kind
}
