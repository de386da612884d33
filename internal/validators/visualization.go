package validators

import (
	"context"
	"strings"
)

// VisualizationID is a folder name as received from the launcher.
type VisualizationID string

// VisualizationValidator validates visualization ids. An id must name an
// immediate subfolder of the visualizations root, so separators, "." and
// ".." are rejected.
type VisualizationValidator struct {
}

func NewVisualizationValidator() Validator {
	return &VisualizationValidator{}
}

func (v *VisualizationValidator) Validate(_ context.Context, obj any, _ ...string) error {
	var id string
	switch value := obj.(type) {
	case VisualizationID:
		id = string(value)
	case *VisualizationID:
		id = string(*value)
	default:
		return ErrUnsupportedType
	}

	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0) {
		return ErrInvalidVisualization
	}

	return nil
}
