package palette

import "github.com/charmbracelet/lipgloss"

// Theme colors the terminal chrome around a display. Ink replaces fixed
// item colors that would vanish on the theme background.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Ink       map[string]string
}

var (
	ThemeDark = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#00ffff"),
		Secondary: lipgloss.Color("#ff00ff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#e0e0e0"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
		Ink:       map[string]string{"#000000": "#e0e0e0"},
	}

	ThemeLight = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#8b008b"),
		Accent:    lipgloss.Color("#cc7a00"),
		Text:      lipgloss.Color("#000000"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#008000"),
		Error:     lipgloss.Color("#cc0000"),
		Ink:       map[string]string{"#ffffff": "#000000"},
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Error:     lipgloss.Color("#ff0000"),
		Ink:       map[string]string{"#000000": "#00ff00"},
	}

	Themes = []Theme{ThemeDark, ThemeLight, ThemeRetro}
)

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Paint maps a resolved hex color through the theme's Ink table.
func (t Theme) Paint(hex string) string {
	if r, ok := t.Ink[hex]; ok {
		return r
	}
	return hex
}
