package models

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure so the transport layer can map it
// to an HTTP status without inspecting message text.
type Kind int

const (
	KindInvalidPayload Kind = iota + 1
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is the tagged error value returned by all domain operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ErrInvalidPayload(message string) *Error {
	return &Error{Kind: KindInvalidPayload, Message: message}
}

func ErrForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func ErrNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ErrConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// HTTPStatus maps a domain error to its transport status code.
// Unknown errors are treated as internal failures.
func HTTPStatus(err error) int {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}
	switch domainErr.Kind {
	case KindInvalidPayload, KindConflict:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
