package http

import (
	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/service"
)

type Handler struct {
	launcher service.Launcher
	appInfo  service.AppInfoService

	// tokenSignKey enables the boundary token check when non-empty.
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(launcher service.Launcher, appInfo service.AppInfoService, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		launcher:     launcher,
		appInfo:      appInfo,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
