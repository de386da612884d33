package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/models"
)

func (m launcherModel) cmdLoadParticipants() tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		items, err := launcher.GetAllParticipants(ctx)
		return participantsLoadedMsg{items: items, err: err}
	}
}

func (m launcherModel) cmdLoadVisualizations() tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		items, err := launcher.GetVisualizations(ctx)
		return visualizationsLoadedMsg{items: items, err: err}
	}
}

func (m launcherModel) cmdAdd(name string) tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		_, err := launcher.AddParticipant(ctx, name)
		return participantChangedMsg{failMessage: app.UIAddErr, err: err}
	}
}

func (m launcherModel) cmdRename(id, name string) tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		_, err := launcher.UpdateParticipant(ctx, id, models.ParticipantUpdate{Name: &name})
		return participantChangedMsg{failMessage: app.UIUpdateErr, err: err}
	}
}

func (m launcherModel) cmdToggle(id string) tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		_, err := launcher.ToggleParticipant(ctx, id)
		return participantChangedMsg{failMessage: app.UIToggleErr, err: err}
	}
}

func (m launcherModel) cmdDelete(id string) tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		err := launcher.DeleteParticipant(ctx, id)
		return participantChangedMsg{failMessage: app.UIDeleteErr, err: err}
	}
}

func (m launcherModel) cmdLaunch(id string) tea.Cmd {
	ctx, launcher := m.ctx, m.launcher

	return func() tea.Msg {
		return launchDoneMsg{id: id, err: launcher.LaunchVisualization(ctx, id)}
	}
}

// cmdCopyEnabledNames copies the enabled names, one per line.
func (m launcherModel) cmdCopyEnabledNames() tea.Cmd {
	ctx, launcher, write := m.ctx, m.launcher, m.writeClipboard

	return func() tea.Msg {
		names, err := launcher.GetEnabledNames(ctx)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err = write(strings.Join(names, "\n")); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{count: len(names)}
	}
}

func (m launcherModel) cmdLoadHostVersion() tea.Cmd {
	versioner, ok := m.launcher.(HostVersioner)
	if !ok {
		return nil
	}
	ctx := m.ctx

	return func() tea.Msg {
		version, err := versioner.HostVersion(ctx)
		return hostVersionMsg{version: version, err: err}
	}
}
