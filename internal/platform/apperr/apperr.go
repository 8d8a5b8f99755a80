// Package apperr defines the error taxonomy shared by all domain services.
// Services return *apperr.Error values; HTTP handlers map them to status
// codes with HTTPStatus. Anything that is not an *apperr.Error is treated
// as an internal failure.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the taxonomy buckets.
type Kind int

const (
	// KindInternal is the fallback for unclassified failures.
	KindInternal Kind = iota
	// KindValidation covers missing or malformed request fields.
	KindValidation
	// KindUnauthorized covers missing/invalid/expired tokens and bad credentials.
	KindUnauthorized
	// KindForbidden covers authenticated callers with insufficient role.
	KindForbidden
	// KindNotFound covers references to absent rows.
	KindNotFound
	// KindConflict covers duplicate usernames and double-open admissions.
	KindConflict
	// KindTransaction covers failures inside a multi-statement atomic unit.
	KindTransaction
	// KindDependency covers an unreachable datastore.
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTransaction:
		return "transaction"
	case KindDependency:
		return "dependency"
	default:
		return "internal"
	}
}

// Error carries a kind, a short caller-safe message, and an optional cause.
// The cause is logged server-side and never serialized to clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a taxonomy error with a static message.
func E(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf builds a taxonomy error with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a taxonomy error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the taxonomy kind from an error chain.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the caller-safe message for an error. Unclassified errors
// get a generic message so internal detail never leaks to clients.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return "internal server error"
}

// HTTPStatus maps an error to the response status of the API contract.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindDependency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
