package models

import "time"

// Token is a boundary capability token presented by the launcher UI on every
// call to the host.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature) sent in
	// the Authorization header.
	SignedString string `json:"-"`

	// Subject names the caller, e.g. "launcher-ui".
	Subject string `json:"-"`

	// ExpiresAt is the moment after which the host rejects the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Expired reports whether the token is no longer valid at now.
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
