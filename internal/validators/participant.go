package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/julekalender/models"
)

// Field names accepted by [ParticipantValidator].
const (
	// FieldName targets the trimmed participant name.
	FieldName = "name"

	// FieldParticipantID targets the participant id.
	FieldParticipantID = "id"

	// FieldUpdate requires at least one field of a ParticipantUpdate.
	FieldUpdate = "update"
)

// ParticipantValidator validates participant payloads crossing the boundary:
// models.Participant, models.AddParticipantRequest and
// models.ParticipantUpdate, as values or pointers.
type ParticipantValidator struct {
}

// NewParticipantValidator constructs a ParticipantValidator.
func NewParticipantValidator() Validator {
	return &ParticipantValidator{}
}

// Validate dispatches on the dynamic type of obj. Names are checked after
// trimming, so "   " is rejected the same way "" is.
func (v *ParticipantValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Participant:
		return v.validateParticipant(value, fields...)
	case *models.Participant:
		return v.validateParticipant(*value, fields...)

	case models.AddParticipantRequest:
		return validateName(value.Name)
	case *models.AddParticipantRequest:
		return validateName(value.Name)

	case models.ParticipantUpdate:
		return v.validateUpdate(value, fields...)
	case *models.ParticipantUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ParticipantValidator) validateParticipant(p models.Participant, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldParticipantID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldParticipantID:
			if strings.TrimSpace(p.ID) == "" {
				return ErrInvalidParticipantID
			}
		case FieldName:
			if err := validateName(p.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks a partial update. By default an empty update is
// allowed and only a present name is checked.
func (v *ParticipantValidator) validateUpdate(u models.ParticipantUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if u.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if u.Name != nil {
				if err := validateName(*u.Name); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
