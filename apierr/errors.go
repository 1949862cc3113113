// Package apierr defines the error taxonomy for the Grokipedia API client.
// Every raw transport outcome maps to exactly one Kind; unrecognized non-2xx
// status codes fall through to KindAPIFailure. Errors carry the status code
// and raw response body when available so callers can branch on severity
// without string-matching messages.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the discriminant of a classified failure.
type Kind string

const (
	// KindBadRequest is HTTP 400. Never retried.
	KindBadRequest Kind = "bad_request"
	// KindNotFound is HTTP 404. Never retried.
	KindNotFound Kind = "not_found"
	// KindRateLimited is HTTP 429. Retryable.
	KindRateLimited Kind = "rate_limited"
	// KindServerError is any HTTP 5xx. Retryable.
	KindServerError Kind = "server_error"
	// KindNetworkFailure means no HTTP response was received: connection
	// refused, timeout, DNS failure, TLS failure, or an aborted retry wait.
	// Retryable.
	KindNetworkFailure Kind = "network_failure"
	// KindValidationFailure means a response was received but its body does
	// not conform to the expected schema. Never retried: the same request
	// would produce the same body.
	KindValidationFailure Kind = "validation_failure"
	// KindAPIFailure is any other non-2xx status code. Never retried.
	KindAPIFailure Kind = "api_failure"
)

// Retryable reports whether failures of this kind may be retried.
func (k Kind) Retryable() bool {
	switch k {
	case KindRateLimited, KindServerError, KindNetworkFailure:
		return true
	case KindBadRequest, KindNotFound, KindValidationFailure, KindAPIFailure:
		return false
	default:
		return false
	}
}

// String returns the kind's wire-stable name.
func (k Kind) String() string {
	return string(k)
}

// Sentinel errors for errors.Is comparisons. Use errors.As with *Error to
// access the status code and response body.
var (
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("resource not found")
	ErrRateLimited       = errors.New("rate limit exceeded")
	ErrServerError       = errors.New("server error")
	ErrNetworkFailure    = errors.New("network failure")
	ErrValidationFailure = errors.New("response validation failed")
	ErrAPIFailure        = errors.New("api request failed")
)

// sentinel maps each kind to its sentinel error.
func sentinel(k Kind) error {
	switch k {
	case KindBadRequest:
		return ErrBadRequest
	case KindNotFound:
		return ErrNotFound
	case KindRateLimited:
		return ErrRateLimited
	case KindServerError:
		return ErrServerError
	case KindNetworkFailure:
		return ErrNetworkFailure
	case KindValidationFailure:
		return ErrValidationFailure
	default:
		return ErrAPIFailure
	}
}

// Error is a classified failure. It is immutable once produced from a raw
// fault. StatusCode is 0 when no HTTP response was received; Body is empty
// when no response body was available.
type Error struct {
	// Kind identifies the taxonomy kind of this failure.
	Kind Kind
	// StatusCode is the HTTP status code, if any.
	StatusCode int
	// Body is the raw response body, if any.
	Body string
	// Message is a human-readable description of the failure.
	Message string
	// Underlying is the wrapped cause, if any.
	Underlying error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status code %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error, preserving the error chain.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is enables errors.Is compatibility with the kind's sentinel error.
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

// Retryable reports whether this failure may be retried.
func (e *Error) Retryable() bool {
	return e.Kind.Retryable()
}

// FromResponse classifies a non-2xx HTTP response into an *Error. The body
// must already be read and decoded by the caller; FromResponse does not touch
// res.Body. Classification is total: every status code maps to a kind.
func FromResponse(res *http.Response, body []byte) *Error {
	status := res.StatusCode
	underlying := fmt.Errorf("got status code %d: %s", status, res.Status)

	var kind Kind
	var msg string
	switch {
	case status == http.StatusBadRequest:
		kind = KindBadRequest
		msg = "bad request"
	case status == http.StatusNotFound:
		kind = KindNotFound
		msg = "resource not found"
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
		msg = "rate limit exceeded"
	case status >= 500 && status < 600:
		kind = KindServerError
		msg = "server error"
	default:
		kind = KindAPIFailure
		msg = fmt.Sprintf("HTTP error %d", status)
	}

	return &Error{
		Kind:       kind,
		StatusCode: status,
		Body:       string(body),
		Message:    msg,
		Underlying: underlying,
	}
}

// FromTransport classifies a transport-level fault (no HTTP response
// received) into a network failure.
func FromTransport(err error) *Error {
	return &Error{
		Kind:       KindNetworkFailure,
		Message:    fmt.Sprintf("network error: %v", err),
		Underlying: err,
	}
}

// NewValidationError builds the terminal failure for a response body that
// could not be decoded or did not conform to the expected schema.
func NewValidationError(body []byte, err error) *Error {
	return &Error{
		Kind:       KindValidationFailure,
		Body:       string(body),
		Message:    fmt.Sprintf("failed to validate response: %v", err),
		Underlying: err,
	}
}
