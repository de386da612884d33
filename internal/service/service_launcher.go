package service

import (
	"context"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/models"
)

// launcherService is the privileged side of the boundary.
type launcherService struct {
	participants   ParticipantService
	visualizations VisualizationService
	window         WindowLauncher
	logger         *logger.Logger
}

func NewLauncherService(participants ParticipantService, visualizations VisualizationService, window WindowLauncher, logger *logger.Logger) Launcher {
	return &launcherService{
		participants:   participants,
		visualizations: visualizations,
		window:         window,
		logger:         logger,
	}
}

func (l *launcherService) GetEnabledNames(ctx context.Context) ([]string, error) {
	return l.participants.ListEnabledNames(ctx), nil
}

func (l *launcherService) GetAllParticipants(ctx context.Context) ([]models.Participant, error) {
	return l.participants.List(ctx), nil
}

func (l *launcherService) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	return l.participants.Add(ctx, name)
}

func (l *launcherService) UpdateParticipant(ctx context.Context, id string, update models.ParticipantUpdate) (*models.Participant, error) {
	return l.participants.Update(ctx, id, update)
}

func (l *launcherService) DeleteParticipant(ctx context.Context, id string) error {
	return l.participants.Delete(ctx, id)
}

func (l *launcherService) ToggleParticipant(ctx context.Context, id string) (*models.Participant, error) {
	return l.participants.Toggle(ctx, id)
}

func (l *launcherService) GetVisualizations(ctx context.Context) ([]models.Visualization, error) {
	return l.visualizations.Discover(ctx), nil
}

func (l *launcherService) LaunchVisualization(ctx context.Context, id string) error {
	l.logger.Info().Str("visualization", id).Msg("launching visualization")
	return l.window.Launch(ctx, id)
}
