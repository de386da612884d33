package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("name is required")
	ErrInvalidParticipantID = errors.New("invalid participant ID")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidVisualization = errors.New("invalid visualization ID")
)
