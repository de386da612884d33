package service

import (
	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/store"
	"github.com/MKhiriev/julekalender/internal/utils"
	"github.com/MKhiriev/julekalender/models"
)

type Services struct {
	ParticipantService   ParticipantService
	VisualizationService VisualizationService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	participants := NewParticipantValidationService().
		Wrap(NewParticipantService(storages.ParticipantRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		ParticipantService:   participants,
		VisualizationService: NewVisualizationService(cfg.Visualizations, logger),
		AppInfoService:       appInfo,
	}, nil
}

// Launcher binds the services to the window that shows visualizations.
func (s *Services) Launcher(window WindowLauncher, logger *logger.Logger) Launcher {
	return NewLauncherService(s.ParticipantService, s.VisualizationService, window, logger)
}
