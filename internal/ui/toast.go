package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jrsteele09/go-wiki-client/notifications"
)

var (
	toastBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	toastLabel = lipgloss.NewStyle().Bold(true)

	severityColors = map[notifications.Severity]lipgloss.Color{
		notifications.SeverityInfo:    lipgloss.Color("#3e8ed0"),
		notifications.SeverityWarning: lipgloss.Color("#ffe08a"),
		notifications.SeverityDanger:  lipgloss.Color("#f14668"),
	}
)

// RenderToast draws a notification as a bordered box coloured by its severity.
func RenderToast(n notifications.Notification) string {
	colour, ok := severityColors[n.Severity]
	if !ok {
		colour = severityColors[notifications.SeverityInfo]
	}
	label := toastLabel.Foreground(colour).Render(n.Severity.String())
	return toastBase.BorderForeground(colour).Render(label + "  " + n.Message)
}
