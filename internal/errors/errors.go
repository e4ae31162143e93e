package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure so callers can branch on it
// without parsing messages.
type Kind string

const (
	KindMissingField  Kind = "MISSING_FIELD"
	KindTypeMismatch  Kind = "TYPE_MISMATCH"
	KindLimitExceeded Kind = "LIMIT_EXCEEDED"
	KindNotFound      Kind = "NOT_FOUND"
	KindForbidden     Kind = "FORBIDDEN"
	KindConflict      Kind = "CONFLICT"
	KindUnauthorized  Kind = "UNAUTHORIZED"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Kind       Kind
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func MissingField(field string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    fmt.Sprintf("field %q is required", field),
		StatusCode: http.StatusBadRequest,
		Kind:       KindMissingField,
	}
}

func TypeMismatch(field string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    fmt.Sprintf("field %q has wrong type", field),
		StatusCode: http.StatusBadRequest,
		Kind:       KindTypeMismatch,
	}
}

func LimitExceeded(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Kind:       KindLimitExceeded,
	}
}

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    message,
		StatusCode: http.StatusNotFound,
		Kind:       KindNotFound,
	}
}

func Forbidden(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    message,
		StatusCode: http.StatusForbidden,
		Kind:       KindForbidden,
	}
}

func Conflict(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Kind:       KindConflict,
	}
}

func Unauthorized(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Kind:       KindUnauthorized,
	}
}

func kindOf(err error) Kind {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsMissingField(err error) bool  { return kindOf(err) == KindMissingField }
func IsTypeMismatch(err error) bool  { return kindOf(err) == KindTypeMismatch }
func IsLimitExceeded(err error) bool { return kindOf(err) == KindLimitExceeded }
func IsNotFound(err error) bool      { return kindOf(err) == KindNotFound }
func IsForbidden(err error) bool     { return kindOf(err) == KindForbidden }
func IsConflict(err error) bool      { return kindOf(err) == KindConflict }
func IsUnauthorized(err error) bool  { return kindOf(err) == KindUnauthorized }
