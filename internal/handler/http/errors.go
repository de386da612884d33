package http

import "errors"

// Sentinel errors used by the boundary token middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request does not
	// include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("invalid boundary token")
)
