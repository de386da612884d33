package client

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/tui"
)

// versionCheckTimeout bounds the startup host check.
const versionCheckTimeout = 3 * time.Second

type App struct {
	host   HostChecker
	ui     UI
	logger *logger.Logger
}

func NewApp(host HostChecker, ui UI, logger *logger.Logger) (*App, error) {
	if host == nil || ui == nil {
		return nil, ErrIncompleteApp
	}
	return &App{host: host, ui: ui, logger: logger}, nil
}

// Run logs the host version and runs the UI. An unreachable host is not
// fatal: the UI shows it per pane and the user can reload.
func (a *App) Run(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	version, err := a.host.HostVersion(checkCtx)
	cancel()

	if err != nil {
		a.logger.Warn().Err(err).Msg("host did not answer the version check")
	} else {
		a.logger.Info().
			Str("host_version", version.Version).
			Str("host_build", version.BuildVersion).
			Msg("connected to host")
	}

	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("launcher closed by user")
		return nil
	}
	return err
}
