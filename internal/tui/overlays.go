package tui

import (
	"fmt"

	"github.com/MKhiriev/julekalender/internal/app"
)

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Feil") + "\n\n" + m.message + "\n\nenter / esc lukk"
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	id   string
	name string
}

func (m confirmModel) View() string {
	content := fmt.Sprintf(app.UIConfirmDelete, displayText(m.name, nameColumnWidth)) + "\n\n"
	content += "y ja    n nei"
	return overlayBoxStyle.Render(content)
}
