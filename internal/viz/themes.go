package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the cards, plots and calculator.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	With    lipgloss.Color
	Without lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:    "night",
		Primary: lipgloss.Color("#7aa2f7"),
		Accent:  lipgloss.Color("#e0af68"),
		Muted:   lipgloss.Color("#565f89"),
		Text:    lipgloss.Color("#c0caf5"),
		With:    lipgloss.Color("#9ece6a"),
		Without: lipgloss.Color("#f7768e"),
		Warning: lipgloss.Color("#ff9e64"),
	}

	ThemeClinical = Theme{
		Name:    "clinical",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#00a8cc"),
		Muted:   lipgloss.Color("#888888"),
		Text:    lipgloss.Color("#ffffff"),
		With:    lipgloss.Color("#00cc66"),
		Without: lipgloss.Color("#cc3366"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#777777"),
		Text:    lipgloss.Color("#eeeeee"),
		With:    lipgloss.Color("#ffffff"),
		Without: lipgloss.Color("#999999"),
		Warning: lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeNight, ThemeClinical, ThemeMono}
)

// GetTheme returns a theme by name, or the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
