package handler

import (
	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/handler/http"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(launcher service.Launcher, appInfo service.AppInfoService, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(launcher, appInfo, cfg.App, logger),
	}, nil
}
