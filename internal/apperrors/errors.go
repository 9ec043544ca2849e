package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure a workflow operation can return. No
// operation failure is fatal; callers decide retry policy per kind.
type Kind int

const (
	KindInternal Kind = iota
	// KindValidation: malformed or missing input field. Safe to retry
	// after correcting the field; state is never mutated.
	KindValidation
	// KindPermissionDenied: actor role rank is insufficient.
	KindPermissionDenied
	// KindPolicy: the actor has no resolvable role record at all. An
	// identity/provisioning problem, not an authorization outcome.
	KindPolicy
	// KindNotFound: target id does not resolve to an existing row.
	KindNotFound
	// KindConflict: a conditional write matched zero rows because the
	// entity state already changed.
	KindConflict
	// KindInvalidTransition: requested state change violates workflow
	// rules.
	KindInvalidTransition
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

func Policy(message string) *Error {
	return &Error{Kind: KindPolicy, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func InvalidTransition(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error kind to a response status. Conflict is
// collapsed with NotFound here since callers usually cannot tell "never
// existed" from "already resolved"; controllers log the two distinctly.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidTransition:
		return http.StatusBadRequest
	case KindPermissionDenied, KindPolicy:
		return http.StatusForbidden
	case KindNotFound, KindConflict:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
