package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("launcher unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("host internal error")

	// ErrHostUnavailable wraps transport failures: connection refused,
	// timeouts, DNS errors.
	ErrHostUnavailable = errors.New("host unavailable")

	ErrUnexpectedResponse = errors.New("unexpected host response")
)
