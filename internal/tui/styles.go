package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"qrave/internal/core/domain/model/order"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF9800")).
			Bold(true).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F44336")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
)

var statusColors = map[order.Status]lipgloss.Color{
	order.Pending:   lipgloss.Color("#FFC107"),
	order.Preparing: lipgloss.Color("#2196F3"),
	order.Ready:     lipgloss.Color("#4CAF50"),
	order.Completed: lipgloss.Color("#888888"),
	order.Cancelled: lipgloss.Color("#F44336"),
}

func statusBadge(s order.Status) string {
	return lipgloss.NewStyle().Foreground(statusColors[s]).Bold(true).Render(s.String())
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF9800")).
		Bold(false)
	return s
}
