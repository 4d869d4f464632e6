package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/palette"
)

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	accent   lipgloss.Style
	success  lipgloss.Style
	err      lipgloss.Style
	frame    lipgloss.Style
	disabled lipgloss.Style
}

func newStyles(t palette.Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		dim:      lipgloss.NewStyle().Foreground(t.Muted),
		accent:   lipgloss.NewStyle().Foreground(t.Accent),
		success:  lipgloss.NewStyle().Foreground(t.Success),
		err:      lipgloss.NewStyle().Foreground(t.Error),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		disabled: lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true),
	}
}
