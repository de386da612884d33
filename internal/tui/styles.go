package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	disabledStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	statusStyle      = lipgloss.NewStyle().Italic(true)
	errorStyle       = lipgloss.NewStyle().Bold(true)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	selectedCard     = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
