package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/julekalender/internal/validators"
	"github.com/MKhiriev/julekalender/models"
)

// ParticipantServiceWrapper decorates a ParticipantService, e.g. with input
// validation.
type ParticipantServiceWrapper interface {
	Wrap(ParticipantService) ParticipantService
}

type ParticipantValidationService struct {
	inner     ParticipantService
	validator validators.Validator
}

func NewParticipantValidationService() ParticipantServiceWrapper {
	return &ParticipantValidationService{
		validator: validators.NewParticipantValidator(),
	}
}

func (v *ParticipantValidationService) Wrap(inner ParticipantService) ParticipantService {
	v.inner = inner
	return v
}

func (v *ParticipantValidationService) List(ctx context.Context) []models.Participant {
	return v.inner.List(ctx)
}

func (v *ParticipantValidationService) ListEnabledNames(ctx context.Context) []string {
	return v.inner.ListEnabledNames(ctx)
}

func (v *ParticipantValidationService) Add(ctx context.Context, rawName string) (models.Participant, error) {
	if err := v.validator.Validate(ctx, models.AddParticipantRequest{Name: rawName}); err != nil {
		return models.Participant{}, mapValidationError(err)
	}
	return v.inner.Add(ctx, rawName)
}

func (v *ParticipantValidationService) Update(ctx context.Context, id string, update models.ParticipantUpdate) (*models.Participant, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return nil, mapValidationError(err)
	}
	return v.inner.Update(ctx, id, update)
}

func (v *ParticipantValidationService) Toggle(ctx context.Context, id string) (*models.Participant, error) {
	return v.inner.Toggle(ctx, id)
}

func (v *ParticipantValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *ParticipantValidationService) ImportLegacy(ctx context.Context, path string) {
	v.inner.ImportLegacy(ctx, path)
}

func mapValidationError(err error) error {
	if errors.Is(err, validators.ErrEmptyName) {
		return ErrEmptyParticipantName
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
