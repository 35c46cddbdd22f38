package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	// Frame colors the floor outline of the surface.
	Frame string
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#00ffff"),
		Secondary: lipgloss.Color("#ff88ff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Error:     lipgloss.Color("#ff4444"),
		Frame:     "#444466",
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Error:     lipgloss.Color("#ff0000"),
		Frame:     "#888888",
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#00a8cc"),
		Secondary: lipgloss.Color("#e0f0ff"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Error:     lipgloss.Color("#ff4444"),
		Frame:     "#4488aa",
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
