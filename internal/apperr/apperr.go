// Package apperr carries the uniform error signal every operation reduces
// its failures to: a kind, a user-facing message, and an optional cause.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	InvalidArgument Kind = iota + 1 // malformed id or missing required field
	NotFound                        // referenced document absent
	Forbidden                       // enrollment check failed
	Dependency                      // store/cache/mail collaborator failure
	Unexpected
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Invalid(message string) *Error   { return New(InvalidArgument, message) }
func NotFoundf(message string) *Error { return New(NotFound, message) }
func Forbiddenf(message string) *Error {
	return New(Forbidden, message)
}

func (k Kind) Status() int {
	switch k {
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Dependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// StatusOf maps any error to its HTTP status; non-apperr errors are 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.Status()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing reason without internal cause detail.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// IsKind reports whether err is an apperr of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
