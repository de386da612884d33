package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/models"
)

// HostVersioner is implemented by launchers that can report the host version.
type HostVersioner interface {
	HostVersion(ctx context.Context) (models.VersionResponse, error)
}

type TUI struct {
	launcher  service.Launcher
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(launcher service.Launcher, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{launcher: launcher, buildInfo: buildInfo, logger: logger}
}

// Run shows the launcher until the user quits. It returns [ErrUserQuit] when
// the program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	model := newLauncherModel(ctx, t.launcher, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(launcherModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.forcedQuit {
		return ErrUserQuit
	}
	return nil
}
