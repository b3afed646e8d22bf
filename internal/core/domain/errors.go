package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error. It is the only error vocabulary the use
// cases and ports produce; adapters translate storage and transport faults
// into one of these kinds before they cross a port boundary.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuthenticationFailed
	KindDuplicate
	KindInternal
)

// Error is a domain error tagged with a Kind. Validation, Duplicate and
// Internal carry a message; NotFound and AuthenticationFailed deliberately
// carry nothing beyond their kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches by kind, so errors.Is(err, domain.ErrNotFound) works regardless
// of which adapter produced the error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound             = &Error{Kind: KindNotFound, Message: "entity not found"}
	ErrAuthenticationFailed = &Error{Kind: KindAuthenticationFailed, Message: "invalid credentials"}
)

// Validation reports malformed caller input; recoverable by correcting it.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Duplicate reports a uniqueness conflict on write.
func Duplicate(msg string) *Error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

// Internal wraps transport faults, malformed stored data and hashing
// failures. Its message is for logs only and must never reach a client.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// Internalf is Internal with formatting.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of a domain error. ok is false for nil and for
// errors that never passed a port boundary.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
