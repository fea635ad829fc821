package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind labels one failure class of the API surface. Every error crossing a
// service boundary carries exactly one Kind so callers can dispatch on it
// instead of string-matching messages.
type Kind string

const (
	Unauthorized      Kind = "unauthorized"
	BadRequest        Kind = "bad_request"
	ConfigError       Kind = "config_error"
	Timeout           Kind = "timeout"
	ProviderError     Kind = "provider_error"
	MalformedResponse Kind = "malformed_response"
	StorageError      Kind = "storage_error"
)

type Error struct {
	Kind Kind
	// Status is the HTTP status written to the client. For ProviderError it
	// is the provider's own status code, passed through.
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, status int, detail string) *Error {
	return &Error{Kind: kind, Status: status, Detail: detail}
}

func Wrap(kind Kind, status int, err error) *Error {
	return &Error{Kind: kind, Status: status, Err: err}
}

func Unauthorizedf(format string, args ...any) *Error {
	return New(Unauthorized, http.StatusUnauthorized, fmt.Sprintf(format, args...))
}

func BadRequestf(format string, args ...any) *Error {
	return New(BadRequest, http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func Config(detail string) *Error {
	return New(ConfigError, http.StatusInternalServerError, detail)
}

func TimedOut(err error) *Error {
	return Wrap(Timeout, http.StatusGatewayTimeout, err)
}

func Provider(status int, detail string) *Error {
	if status == 0 {
		status = http.StatusBadGateway
	}
	return New(ProviderError, status, detail)
}

func Malformed(detail string) *Error {
	return New(MalformedResponse, http.StatusBadGateway, detail)
}

func Storage(err error) *Error {
	return Wrap(StorageError, http.StatusInternalServerError, err)
}

// From pulls the *Error out of an error chain. Anything that is not one of
// ours is reported as a generic storage/server failure.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Storage(err)
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
