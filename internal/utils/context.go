// Package utils provides general-purpose helper utilities used across the
// host and the launcher: context keys, JSON responses, the HTTP client,
// id generation, boundary tokens and display-name helpers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the boundary middleware stores the
// subject of a verified caller token.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the caller subject.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the caller subject from the context.
//
// Returns ok == false when the value is missing or is not a string.
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok
}
