package render

import "github.com/charmbracelet/lipgloss"

// Theme colours the two stroke symbols and the surface behind them. Text and
// Error are used by the browser page.
type Theme struct {
	Name       string
	Horizontal lipgloss.Color
	Vertical   lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Horizontal: "#00ffff",
		Vertical:   "#ff00ff",
		Background: "#0a0a0a",
		Text:       "#f0f0f0",
		Error:      "#ff3b3b",
	}

	// green phosphor
	ThemeRetro = Theme{
		Name:       "retro",
		Horizontal: "#33ff33",
		Vertical:   "#1fbf1f",
		Background: "#001100",
		Text:       "#33ff33",
		Error:      "#ffaa00",
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Horizontal: "#f5f5f5",
		Vertical:   "#b0b0b0",
		Background: "#111111",
		Text:       "#f5f5f5",
		Error:      "#e06c75",
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Horizontal: "#1e90ff",
		Vertical:   "#40e0d0",
		Background: "#021526",
		Text:       "#dceefb",
		Error:      "#ff6f61",
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Horizontal: "#ff7b54",
		Vertical:   "#ffd56b",
		Background: "#2b1330",
		Text:       "#fff3e6",
		Error:      "#ff2e63",
	}

	DefaultTheme = ThemeClassic

	// Themes is the cycle order used by NextTheme.
	Themes = []Theme{ThemeClassic, ThemeRetro, ThemeMinimal, ThemeOcean, ThemeSunset}
)

// GetTheme looks a theme up by name. Unknown names get DefaultTheme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DefaultTheme
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for _, t := range Themes {
		names = append(names, t.Name)
	}
	return names
}

// NextTheme returns the theme after t in [Themes], wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}
