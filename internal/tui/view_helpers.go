package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MKhiriev/julekalender/internal/utils"
)

const uiDivider = "──────────────────────────────────────────────────────"

const ellipsis = "…"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("q: avslutt"))

	return b.String()
}

// displayText sanitizes s and fits it into width terminal cells.
// A non-positive width disables fitting.
func displayText(s string, width int) string {
	s = utils.SanitizeDisplayText(s)
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// padText is displayText padded with spaces to exactly width cells.
func padText(s string, width int) string {
	return runewidth.FillRight(displayText(s, width), width)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
