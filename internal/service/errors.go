package service

import "errors"

var (
	// ErrEmptyParticipantName is the validation error for a name that is
	// empty after trimming.
	ErrEmptyParticipantName = errors.New("participant name is required")

	// ErrInvalidDataProvided is returned for payloads that cannot be applied.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrVisualizationNotFound is returned when an id does not resolve to a
	// visualization folder with an entry page.
	ErrVisualizationNotFound = errors.New("visualization not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
