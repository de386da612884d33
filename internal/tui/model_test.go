package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/julekalender/internal/adapter"
	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/mock"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/models"
)

var (
	kari = models.Participant{ID: "p-1", Name: "Kari", Enabled: true}
	ola  = models.Participant{ID: "p-2", Name: "Ola", Enabled: false}

	snowGlobe = models.Visualization{ID: "snow-globe", Name: "Snow Globe", Description: "Falling names", Icon: "❄"}
	wheel     = models.Visualization{ID: "wheel", Name: "Wheel", Description: "Spin it"}
)

func newTestModel(t *testing.T) (launcherModel, *mock.MockLauncher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	launcher := mock.NewMockLauncher(ctrl)

	m := newLauncherModel(context.Background(), launcher, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"), logger.Nop())
	m.writeClipboard = func(string) error {
		t.Fatal("clipboard must not be written")
		return nil
	}
	return m, launcher
}

// loadedModel returns a model whose panes show participants and visualizations.
func loadedModel(t *testing.T, participants []models.Participant, visualizations []models.Visualization) (launcherModel, *mock.MockLauncher) {
	t.Helper()

	m, launcher := newTestModel(t)
	launcher.EXPECT().GetAllParticipants(gomock.Any()).Return(participants, nil)
	launcher.EXPECT().GetVisualizations(gomock.Any()).Return(visualizations, nil)

	return drive(t, m, m.Init()), launcher
}

// drive runs cmd and feeds every launcher message it produces back into m
// until no commands are left. Messages of other components (cursor blink) are
// dropped.
func drive(t *testing.T, m launcherModel, cmd tea.Cmd) launcherModel {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case participantsLoadedMsg, visualizationsLoadedMsg, participantChangedMsg,
			launchDoneMsg, copiedMsg, hostVersionMsg:
			updated, nextCmd := m.Update(msg)
			m = updated.(launcherModel)
			queue = append(queue, nextCmd)
		}
	}
	return m
}

func press(t *testing.T, m launcherModel, msg tea.KeyMsg) (launcherModel, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	model, ok := updated.(launcherModel)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestInit_LoadsBothPanes(t *testing.T) {
	m, _ := loadedModel(t, []models.Participant{kari, ola}, []models.Visualization{snowGlobe})

	assert.False(t, m.participants.loading)
	assert.False(t, m.visualizations.loading)
	assert.Len(t, m.participants.items, 2)
	assert.Len(t, m.visualizations.items, 1)

	view := m.View()
	assert.Contains(t, view, "DELTAKERE 1 / 2")
	assert.Contains(t, view, "[x] Kari")
	assert.Contains(t, view, "Ola")
}

func TestView_EmptyStates(t *testing.T) {
	m, _ := loadedModel(t, []models.Participant{}, []models.Visualization{})

	assert.Contains(t, m.View(), app.UINoParticipants)
	assert.Contains(t, m.View(), "DELTAKERE 0 / 0")

	m, _ = press(t, m, keyTab)
	assert.Contains(t, m.View(), app.UINoVisualizations)
}

func TestView_LoadErrorsRenderInline(t *testing.T) {
	m, launcher := newTestModel(t)
	launcher.EXPECT().GetAllParticipants(gomock.Any()).Return(nil, fmt.Errorf("%w: dial tcp", adapter.ErrHostUnavailable))
	launcher.EXPECT().GetVisualizations(gomock.Any()).Return(nil, errors.New("boom"))

	m = drive(t, m, m.Init())

	assert.False(t, m.showError, "list load errors are not blocking")
	view := m.View()
	assert.Contains(t, view, app.UILoadParticipantsErr)
	assert.Contains(t, view, app.UIHostUnavailable)

	m, _ = press(t, m, keyTab)
	view = m.View()
	assert.Contains(t, view, app.UILoadVisualizationErr)
	assert.Contains(t, view, "boom")
}

func TestView_SanitizesParticipantNames(t *testing.T) {
	evil := models.Participant{ID: "p-9", Name: "\x1b[31mEvil\x1b[0m\x07", Enabled: true}
	m, _ := loadedModel(t, []models.Participant{evil}, []models.Visualization{})

	view := m.View()
	assert.Contains(t, view, "Evil")
	assert.NotContains(t, view, "\x1b[31m")
	assert.NotContains(t, view, "\x07")
}

func TestAdd_SavesAndReloads(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari}, []models.Visualization{})

	m, _ = press(t, m, runes("a"))
	require.Equal(t, formAdd, m.form)

	m, _ = press(t, m, runes("  Ola "))
	m, cmd := press(t, m, keyEnter)
	assert.Equal(t, formNone, m.form)

	gomock.InOrder(
		launcher.EXPECT().AddParticipant(gomock.Any(), "Ola").Return(ola, nil),
		launcher.EXPECT().GetAllParticipants(gomock.Any()).Return([]models.Participant{kari, ola}, nil),
	)
	m = drive(t, m, cmd)

	assert.Len(t, m.participants.items, 2)
	assert.False(t, m.showError)
}

func TestAdd_EmptyNameShowsOverlay(t *testing.T) {
	m, _ := loadedModel(t, []models.Participant{}, []models.Visualization{})

	m, _ = press(t, m, runes("a"))
	m, _ = press(t, m, runes("   "))
	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, app.UIEmptyName, m.errorOverlay.message)
	assert.Contains(t, m.View(), app.UIEmptyName)
	assert.Equal(t, formAdd, m.form, "the form stays open")

	m, _ = press(t, m, keyEsc)
	assert.False(t, m.showError)
	assert.Equal(t, formAdd, m.form)

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, formNone, m.form)
}

func TestAdd_HostErrorShowsOverlayWithoutReload(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "generic", err: errors.New("boom"), want: app.UIAddErr},
		{name: "host unavailable", err: fmt.Errorf("%w: refused", adapter.ErrHostUnavailable), want: app.UIHostUnavailable},
		{name: "rejected name", err: fmt.Errorf("%w: %w", adapter.ErrBadRequest, service.ErrEmptyParticipantName), want: app.UIEmptyName},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: app.UIAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, launcher := loadedModel(t, []models.Participant{}, []models.Visualization{})

			m, _ = press(t, m, runes("a"))
			m, _ = press(t, m, runes("Kari"))
			m, cmd := press(t, m, keyEnter)

			launcher.EXPECT().AddParticipant(gomock.Any(), "Kari").Return(models.Participant{}, tt.err)
			m = drive(t, m, cmd)

			assert.True(t, m.showError)
			assert.Equal(t, tt.want, m.errorOverlay.message)
		})
	}
}

func TestRename_UpdatesName(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari, ola}, []models.Visualization{})

	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, runes("e"))
	require.Equal(t, formRename, m.form)
	assert.Equal(t, "Ola", m.input.Value())

	m, _ = press(t, m, runes(" N"))
	m, cmd := press(t, m, keyEnter)

	renamed := models.Participant{ID: "p-2", Name: "Ola N"}
	gomock.InOrder(
		launcher.EXPECT().UpdateParticipant(gomock.Any(), "p-2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, update models.ParticipantUpdate) (*models.Participant, error) {
				require.NotNil(t, update.Name)
				assert.Equal(t, "Ola N", *update.Name)
				assert.Nil(t, update.Enabled)
				return &renamed, nil
			}),
		launcher.EXPECT().GetAllParticipants(gomock.Any()).Return([]models.Participant{kari, renamed}, nil),
	)
	m = drive(t, m, cmd)

	assert.Equal(t, "Ola N", m.participants.items[1].Name)
	assert.Equal(t, 1, m.participants.idx)
}

func TestToggle_SelectedParticipant(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari, ola}, []models.Visualization{})

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keySpace)

	enabled := ola
	enabled.Enabled = true
	gomock.InOrder(
		launcher.EXPECT().ToggleParticipant(gomock.Any(), "p-2").Return(&enabled, nil),
		launcher.EXPECT().GetAllParticipants(gomock.Any()).Return([]models.Participant{kari, enabled}, nil),
	)
	m = drive(t, m, cmd)

	assert.Contains(t, m.View(), "DELTAKERE 2 / 2")
}

func TestToggle_EmptyListIsNoop(t *testing.T) {
	m, _ := loadedModel(t, []models.Participant{}, []models.Visualization{})

	_, cmd := press(t, m, keySpace)
	assert.Nil(t, cmd)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari, ola}, []models.Visualization{})

	m, cmd := press(t, m, runes("d"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Kari")

	m, cmd = press(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)

	m, _ = press(t, m, runes("d"))
	m, cmd = press(t, m, runes("y"))
	assert.False(t, m.showConfirm)

	gomock.InOrder(
		launcher.EXPECT().DeleteParticipant(gomock.Any(), "p-1").Return(nil),
		launcher.EXPECT().GetAllParticipants(gomock.Any()).Return([]models.Participant{ola}, nil),
	)
	m = drive(t, m, cmd)

	assert.Equal(t, []models.Participant{ola}, m.participants.items)
	assert.Equal(t, 0, m.participants.idx)
}

func TestDelete_FailureShowsOverlay(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari}, []models.Visualization{})

	m, _ = press(t, m, runes("d"))
	m, cmd := press(t, m, runes("y"))

	launcher.EXPECT().DeleteParticipant(gomock.Any(), "p-1").Return(errors.New("disk full"))
	m = drive(t, m, cmd)

	assert.True(t, m.showError)
	assert.Equal(t, app.UIDeleteErr, m.errorOverlay.message)
}

func TestCopy_EnabledNamesToClipboard(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari, ola}, []models.Visualization{})

	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := press(t, m, runes("c"))
	launcher.EXPECT().GetEnabledNames(gomock.Any()).Return([]string{"Kari", "Per"}, nil)
	m = drive(t, m, cmd)

	assert.Equal(t, "Kari\nPer", copied)
	assert.Equal(t, app.UIClipboardCopied, m.status)
	assert.Contains(t, m.View(), app.UIClipboardCopied)
}

func TestCopy_ClipboardFailure(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari}, []models.Visualization{})
	m.writeClipboard = func(string) error { return errors.New("no clipboard utility") }

	m, cmd := press(t, m, runes("c"))
	launcher.EXPECT().GetEnabledNames(gomock.Any()).Return([]string{"Kari"}, nil)
	m = drive(t, m, cmd)

	assert.True(t, m.showError)
	assert.Equal(t, app.UIClipboardErr, m.errorOverlay.message)
}

func TestLaunch_SelectedVisualization(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari}, []models.Visualization{snowGlobe, wheel})

	m, _ = press(t, m, keyTab)
	require.Equal(t, paneVisualizations, m.active)
	assert.Contains(t, m.View(), "Snow Globe")
	assert.Contains(t, m.View(), "Falling names")

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keyEnter)

	launcher.EXPECT().LaunchVisualization(gomock.Any(), "wheel").Return(nil)
	m = drive(t, m, cmd)

	assert.False(t, m.showError)
}

func TestLaunch_MissingVisualizationReloads(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{}, []models.Visualization{snowGlobe, wheel})

	m, _ = press(t, m, keyTab)
	m, cmd := press(t, m, keyEnter)

	gomock.InOrder(
		launcher.EXPECT().LaunchVisualization(gomock.Any(), "snow-globe").
			Return(fmt.Errorf("%w: %w", adapter.ErrNotFound, service.ErrVisualizationNotFound)),
		launcher.EXPECT().GetVisualizations(gomock.Any()).Return([]models.Visualization{wheel}, nil),
	)
	m = drive(t, m, cmd)

	assert.True(t, m.showError)
	assert.Equal(t, app.UIVisualizationMissing, m.errorOverlay.message)
	assert.Equal(t, []models.Visualization{wheel}, m.visualizations.items)
}

func TestParticipantKeysIgnoredOnVisualizationsPane(t *testing.T) {
	m, _ := loadedModel(t, []models.Participant{kari}, []models.Visualization{snowGlobe})

	m, _ = press(t, m, keyTab)
	m, cmd := press(t, m, runes("d"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestReload_FetchesBothLists(t *testing.T) {
	m, launcher := loadedModel(t, []models.Participant{kari}, []models.Visualization{})

	m, cmd := press(t, m, runes("r"))
	assert.True(t, m.participants.loading)
	assert.True(t, m.visualizations.loading)

	launcher.EXPECT().GetAllParticipants(gomock.Any()).Return([]models.Participant{kari, ola}, nil)
	launcher.EXPECT().GetVisualizations(gomock.Any()).Return([]models.Visualization{snowGlobe}, nil)
	m = drive(t, m, cmd)

	assert.Len(t, m.participants.items, 2)
	assert.Len(t, m.visualizations.items, 1)
}

type versionedLauncher struct {
	*mock.MockLauncher
	version models.VersionResponse
}

func (v versionedLauncher) HostVersion(context.Context) (models.VersionResponse, error) {
	return v.version, nil
}

func TestBuildInfo_ShowsHostVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := versionedLauncher{
		MockLauncher: mock.NewMockLauncher(ctrl),
		version:      models.VersionResponse{Version: "2.0.0", BuildVersion: "v2.0.0", BuildCommit: "def456"},
	}
	m := newLauncherModel(context.Background(), launcher, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"), logger.Nop())

	m, cmd := press(t, m, runes("v"))
	require.True(t, m.showBuildInfo)
	m = drive(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "2.0.0")
	assert.Contains(t, view, "def456")

	m, _ = press(t, m, keyEsc)
	assert.False(t, m.showBuildInfo)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, cmd = press(t, m, keyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.forcedQuit)
}

func TestQuitKeyTypesIntoForm(t *testing.T) {
	m, _ := loadedModel(t, []models.Participant{}, []models.Visualization{})

	m, _ = press(t, m, runes("a"))
	m, _ = press(t, m, runes("q"))

	assert.Equal(t, formAdd, m.form)
	assert.Equal(t, "q", m.input.Value())
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, userMessage(nil, "fallback"))
	assert.Equal(t, "fallback", userMessage(errors.New("x"), "fallback"))
	assert.Equal(t, app.UIEmptyName, userMessage(service.ErrEmptyParticipantName, "fallback"))
	assert.Equal(t, app.UIVisualizationMissing, userMessage(service.ErrVisualizationNotFound, "fallback"))
	assert.Equal(t, app.UIHostUnavailable, userMessage(adapter.ErrHostUnavailable, "fallback"))
	assert.Equal(t, app.UIAccessDenied, userMessage(adapter.ErrUnauthorized, "fallback"))
}

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "Kari", displayText("Kari", 10))
	assert.Equal(t, "Kari Nordm…", displayText("Kari Nordmann", 11))
	assert.Equal(t, "Kari", displayText("\x1b[1mKari\x1b[0m", 0))
	assert.Equal(t, "Ål  ", padText("Ål", 4))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(3, 0))
	assert.Equal(t, 1, clampIndex(3, 2))
	assert.Equal(t, 2, clampIndex(2, 5))
}
