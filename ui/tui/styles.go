package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	light    lipgloss.Style
	dark     lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	target   lipgloss.Style
	white    lipgloss.Style
	black    lipgloss.Style
	title    lipgloss.Style
	status   lipgloss.Style
	error    lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme string) styles {
	square := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	if theme == "mono" {
		return styles{
			light:    square,
			dark:     square,
			cursor:   square.Reverse(true),
			selected: square.Bold(true).Underline(true),
			target:   square.Underline(true),
			white:    lipgloss.NewStyle(),
			black:    lipgloss.NewStyle(),
			title:    lipgloss.NewStyle().Bold(true),
			status:   lipgloss.NewStyle(),
			error:    lipgloss.NewStyle().Bold(true),
			help:     lipgloss.NewStyle().Faint(true),
		}
	}

	return styles{
		light:    square.Background(lipgloss.Color("#e8d0aa")),
		dark:     square.Background(lipgloss.Color("#8b5a2b")),
		cursor:   square.Background(lipgloss.Color("#4a90d9")),
		selected: square.Background(lipgloss.Color("#e2c044")),
		target:   square.Background(lipgloss.Color("#6aa84f")),
		white:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		black:    lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e2c044")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")),
		error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		help:     lipgloss.NewStyle().Faint(true),
	}
}
