package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/julekalender/models"
)

// ParticipantService is the only writer of the participant collection.
// Every mutation replaces the stored collection as a whole.
type ParticipantService interface {
	List(ctx context.Context) []models.Participant
	ListEnabledNames(ctx context.Context) []string

	// Add trims rawName and appends an enabled participant.
	Add(ctx context.Context, rawName string) (models.Participant, error)

	// Update and Toggle return a nil participant and a nil error when id is
	// unknown.
	Update(ctx context.Context, id string, update models.ParticipantUpdate) (*models.Participant, error)
	Toggle(ctx context.Context, id string) (*models.Participant, error)

	// Delete is idempotent.
	Delete(ctx context.Context, id string) error

	// ImportLegacy seeds an empty collection from a names file. Failures are
	// logged, never returned.
	ImportLegacy(ctx context.Context, path string)
}

// VisualizationService discovers visualizations on every call.
type VisualizationService interface {
	Discover(ctx context.Context) []models.Visualization

	// EntryPage returns the absolute path of the entry page of id.
	EntryPage(ctx context.Context, id string) (string, error)
}

// WindowLauncher opens the visualization host window.
type WindowLauncher interface {
	Launch(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Launcher is the closed set of operations the launcher UI may invoke on the
// host, one method per [models.Operation]. The host implements it directly;
// the launcher reaches it through the HTTP adapter.
type Launcher interface {
	GetEnabledNames(ctx context.Context) ([]string, error)
	GetAllParticipants(ctx context.Context) ([]models.Participant, error)
	AddParticipant(ctx context.Context, name string) (models.Participant, error)
	UpdateParticipant(ctx context.Context, id string, update models.ParticipantUpdate) (*models.Participant, error)
	DeleteParticipant(ctx context.Context, id string) error
	ToggleParticipant(ctx context.Context, id string) (*models.Participant, error)
	GetVisualizations(ctx context.Context) ([]models.Visualization, error)
	LaunchVisualization(ctx context.Context, id string) error
}
