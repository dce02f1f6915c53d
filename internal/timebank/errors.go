package timebank

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories a backend call can
// produce. Callers branch on the kind, never on message text.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindAuth        ErrorKind = "auth"
	KindForbidden   ErrorKind = "forbidden"
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
	KindUnavailable ErrorKind = "unavailable"
)

// Error is the only error type returned by Client methods. Message is
// user-presentable; Status is the upstream HTTP status (0 for transport
// failures).
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("timebank: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("timebank: %s (%d): %s", e.Kind, e.Status, e.Message)
}

// KindOf extracts the kind from err, or KindUnavailable when err is not a
// *Error (anything unrecognized is treated as an upstream failure).
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// IsAuth reports whether err means the session token is missing or expired.
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == 400:
		return KindValidation
	case status == 401:
		return KindAuth
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status == 409:
		return KindConflict
	default:
		return KindUnavailable
	}
}
