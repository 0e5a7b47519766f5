// Package cerr classifies errors with the HTTP status code that they
// should be reported with at the REST boundary. Errors are created by
// the use cases layer and unwrapped by the serialization helpers.
package cerr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// Authentication classifies a rejected login, that is, an unknown
// principal or a refused credential. No partial session exists after
// such an error.
func Authentication(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnauthorized}
}

// Authorization classifies an operation which the effective role may
// not perform. The wrapped error must not leak which specific grant
// was missing.
func Authorization(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusForbidden}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict classifies an integrity violation, such as linking an
// ownership row which already exists. It is kept distinguishable from
// generic failures so callers can react to the duplicate specifically.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

// Unavailable classifies pool exhaustion and transient connectivity
// failures. The operation may be retried by the caller; this layer
// never retries on its own.
func Unavailable(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusServiceUnavailable}
}
