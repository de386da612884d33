// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/models"
)

type pane int

const (
	paneParticipants pane = iota
	paneVisualizations
)

type formMode int

const (
	formNone formMode = iota
	formAdd
	formRename
)

// nameCharLimit bounds the add and rename inputs.
const nameCharLimit = 64

type participantsPane struct {
	items   []models.Participant
	idx     int
	loading bool
	err     error
}

func (p participantsPane) current() (models.Participant, bool) {
	if len(p.items) == 0 || p.idx < 0 || p.idx >= len(p.items) {
		return models.Participant{}, false
	}
	return p.items[p.idx], true
}

func (p participantsPane) enabledCount() int {
	n := 0
	for _, item := range p.items {
		if item.Enabled {
			n++
		}
	}
	return n
}

type visualizationsPane struct {
	items   []models.Visualization
	idx     int
	loading bool
	err     error
}

func (p visualizationsPane) current() (models.Visualization, bool) {
	if len(p.items) == 0 || p.idx < 0 || p.idx >= len(p.items) {
		return models.Visualization{}, false
	}
	return p.items[p.idx], true
}

type launcherModel struct {
	ctx       context.Context
	launcher  service.Launcher
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// writeClipboard is replaced in tests.
	writeClipboard func(string) error

	active         pane
	participants   participantsPane
	visualizations visualizationsPane

	form     formMode
	input    textinput.Model
	renameID string

	showConfirm bool
	confirm     confirmModel

	showError    bool
	errorOverlay errorOverlayModel

	showBuildInfo bool
	hostVersion   *models.VersionResponse
	hostErr       string

	status     string
	forcedQuit bool
}

func newLauncherModel(ctx context.Context, launcher service.Launcher, buildInfo models.AppBuildInfo, logger *logger.Logger) launcherModel {
	input := textinput.New()
	input.CharLimit = nameCharLimit
	input.Width = nameColumnWidth

	return launcherModel{
		ctx:            ctx,
		launcher:       launcher,
		buildInfo:      buildInfo,
		logger:         logger,
		writeClipboard: clipboard.WriteAll,
		input:          input,
		participants:   participantsPane{loading: true},
		visualizations: visualizationsPane{loading: true},
	}
}

func (m launcherModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadParticipants(), m.cmdLoadVisualizations())
}

func (m launcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case participantsLoadedMsg:
		m.participants.loading = false
		m.participants.err = msg.err
		if msg.err == nil {
			m.participants.items = msg.items
			m.participants.idx = clampIndex(m.participants.idx, len(msg.items))
		}
		return m, nil
	case visualizationsLoadedMsg:
		m.visualizations.loading = false
		m.visualizations.err = msg.err
		if msg.err == nil {
			m.visualizations.items = msg.items
			m.visualizations.idx = clampIndex(m.visualizations.idx, len(msg.items))
		}
		return m, nil
	case participantChangedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("participant change failed")
			m.showErrorf(userMessage(msg.err, msg.failMessage))
			return m, nil
		}
		m.participants.loading = true
		return m, m.cmdLoadParticipants()
	case launchDoneMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("visualization", msg.id).Msg("launch failed")
			m.showErrorf(userMessage(msg.err, app.UILaunchErr))
			if errors.Is(msg.err, service.ErrVisualizationNotFound) {
				m.visualizations.loading = true
				return m, m.cmdLoadVisualizations()
			}
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("copy enabled names failed")
			m.showErrorf(userMessage(msg.err, app.UIClipboardErr))
			return m, nil
		}
		m.status = app.UIClipboardCopied
		return m, nil
	case hostVersionMsg:
		if msg.err != nil {
			m.hostErr = userMessage(msg.err, app.UIHostUnavailable)
			return m, nil
		}
		m.hostErr = ""
		version := msg.version
		m.hostVersion = &version
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.form != formNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m launcherModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		m.forcedQuit = true
		return m, tea.Quit
	}

	switch {
	case m.showError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay = errorOverlayModel{}
		}
		return m, nil
	case m.showConfirm:
		return m.updateConfirm(msg)
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.form != formNone:
		return m.updateForm(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.active == paneParticipants {
			m.active = paneVisualizations
		} else {
			m.active = paneParticipants
		}
		return m, nil
	case key.Matches(msg, keys.reload):
		m.participants.loading = true
		m.visualizations.loading = true
		return m, tea.Batch(m.cmdLoadParticipants(), m.cmdLoadVisualizations())
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, m.cmdLoadHostVersion()
	}

	if m.active == paneVisualizations {
		return m.updateVisualizations(msg)
	}
	return m.updateParticipants(msg)
}

func (m launcherModel) updateParticipants(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.participants.idx > 0 {
			m.participants.idx--
		}
	case key.Matches(msg, keys.down):
		if m.participants.idx < len(m.participants.items)-1 {
			m.participants.idx++
		}
	case key.Matches(msg, keys.add):
		return m.openForm(formAdd, "", "")
	case key.Matches(msg, keys.edit):
		item, ok := m.participants.current()
		if !ok {
			return m, nil
		}
		return m.openForm(formRename, item.ID, item.Name)
	case key.Matches(msg, keys.toggle):
		item, ok := m.participants.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggle(item.ID)
	case key.Matches(msg, keys.delete):
		item, ok := m.participants.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{id: item.ID, name: item.Name}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyEnabledNames()
	}

	return m, nil
}

func (m launcherModel) updateVisualizations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.visualizations.idx > 0 {
			m.visualizations.idx--
		}
	case key.Matches(msg, keys.down):
		if m.visualizations.idx < len(m.visualizations.items)-1 {
			m.visualizations.idx++
		}
	case key.Matches(msg, keys.enter):
		item, ok := m.visualizations.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdLaunch(item.ID)
	}

	return m, nil
}

func (m launcherModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.confirm.id
		m.showConfirm = false
		m.confirm = confirmModel{}
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m launcherModel) openForm(mode formMode, id, value string) (tea.Model, tea.Cmd) {
	m.form = mode
	m.renameID = id
	m.input.Reset()
	m.input.SetValue(value)
	m.input.Placeholder = "Navn"
	cmd := m.input.Focus()
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m launcherModel) closeForm() launcherModel {
	m.form = formNone
	m.renameID = ""
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m launcherModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.closeForm(), nil
	case key.Matches(msg, keys.enter):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.showErrorf(app.UIEmptyName)
			return m, nil
		}

		mode, id := m.form, m.renameID
		m = m.closeForm()
		if mode == formRename {
			return m, m.cmdRename(id, name)
		}
		return m, m.cmdAdd(name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *launcherModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
