package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/julekalender/internal/app"
	"github.com/MKhiriev/julekalender/models"
)

const (
	nameColumnWidth        = 32
	descriptionColumnWidth = 48
	iconColumnWidth        = 2
)

const (
	participantsHotKeys   = "tab: bytt │ ↑/↓: nav. │ space: på/av │ a: legg til │ e: endre │ d: slett │ c: kopier │ r: last på nytt │ v: om"
	visualizationsHotKeys = "tab: bytt │ ↑/↓: nav. │ enter: start │ r: last på nytt │ v: om"
	formHotKeys           = "enter: lagre │ esc: avbryt"
)

func (m launcherModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.hostVersion, m.hostErr))
	}

	var body, hotKeys string
	if m.active == paneVisualizations {
		body, hotKeys = m.viewVisualizations(), visualizationsHotKeys
	} else {
		body, hotKeys = m.viewParticipants(), participantsHotKeys
	}
	if m.form != formNone {
		hotKeys = formHotKeys
	}
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	out := renderPage(m.viewTabs(), body, hotKeys)

	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

func (m launcherModel) viewTabs() string {
	participants := fmt.Sprintf("DELTAKERE %d / %d", m.participants.enabledCount(), len(m.participants.items))
	visualizations := "VISUALISERINGER"

	if m.active == paneVisualizations {
		return inactiveTabStyle.Render(participants) + "   " + activeTabStyle.Render(visualizations)
	}
	return activeTabStyle.Render(participants) + "   " + inactiveTabStyle.Render(visualizations)
}

func (m launcherModel) viewParticipants() string {
	var b strings.Builder

	switch m.form {
	case formAdd:
		b.WriteString("Ny deltaker: ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	case formRename:
		b.WriteString("Nytt navn: ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.participants.loading && len(m.participants.items) == 0:
		b.WriteString("Laster...")
	case m.participants.err != nil:
		b.WriteString(emptyState("⚠", app.UILoadParticipantsErr, userMessage(m.participants.err, m.participants.err.Error())))
	case len(m.participants.items) == 0:
		b.WriteString(emptyState("📝", app.UINoParticipants, app.UIEmptyStateAdd))
	default:
		for i, p := range m.participants.items {
			b.WriteString(participantRow(p, i == m.participants.idx))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func participantRow(p models.Participant, selected bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	check := "[ ]"
	if p.Enabled {
		check = "[x]"
	}

	name := padText(p.Name, nameColumnWidth)
	if !p.Enabled {
		name = disabledStyle.Render(name)
	}
	return cursor + " " + check + " " + name
}

func (m launcherModel) viewVisualizations() string {
	switch {
	case m.visualizations.loading && len(m.visualizations.items) == 0:
		return "Laster..."
	case m.visualizations.err != nil:
		return emptyState("⚠", app.UILoadVisualizationErr, userMessage(m.visualizations.err, m.visualizations.err.Error()))
	case len(m.visualizations.items) == 0:
		return emptyState("🎮", app.UINoVisualizations, app.UIEmptyStateVisualize)
	}

	cards := make([]string, 0, len(m.visualizations.items))
	for i, v := range m.visualizations.items {
		cards = append(cards, visualizationCard(v, i == m.visualizations.idx))
	}
	return strings.Join(cards, "\n")
}

func visualizationCard(v models.Visualization, selected bool) string {
	content := padText(v.Icon, iconColumnWidth) + " " + titleStyle.Render(displayText(v.Name, nameColumnWidth))
	if desc := displayText(v.Description, descriptionColumnWidth); desc != "" {
		content += "\n" + desc
	}

	if selected {
		return selectedCard.Render(content)
	}
	return cardStyle.Render(content)
}

func emptyState(icon, title, message string) string {
	out := icon + " " + titleStyle.Render(title)
	if message != "" {
		out += "\n" + helpStyle.Render(displayText(message, descriptionColumnWidth))
	}
	return out
}
