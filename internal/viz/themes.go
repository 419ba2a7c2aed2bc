package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the TUI chrome. Pendulum colors
// come from the palette, not the theme.
type Theme struct {
	Name      string
	Primary   lipgloss.Color // rods, pivot, title
	Muted     lipgloss.Color // help line, labels
	Highlight lipgloss.Color // values in the status header
	Warning   lipgloss.Color // paused indicator
}

var themes = map[string]Theme{
	"cyan": {
		Name:      "cyan",
		Primary:   lipgloss.Color("86"),
		Muted:     lipgloss.Color("240"),
		Highlight: lipgloss.Color("252"),
		Warning:   lipgloss.Color("220"),
	},
	"magenta": {
		Name:      "magenta",
		Primary:   lipgloss.Color("213"),
		Muted:     lipgloss.Color("240"),
		Highlight: lipgloss.Color("255"),
		Warning:   lipgloss.Color("220"),
	},
	"green": {
		Name:      "green",
		Primary:   lipgloss.Color("82"),
		Muted:     lipgloss.Color("238"),
		Highlight: lipgloss.Color("250"),
		Warning:   lipgloss.Color("214"),
	},
	"mono": {
		Name:      "mono",
		Primary:   lipgloss.Color("255"),
		Muted:     lipgloss.Color("244"),
		Highlight: lipgloss.Color("255"),
		Warning:   lipgloss.Color("250"),
	},
}

// GetTheme returns the named theme, falling back to "cyan".
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["cyan"]
}

// ListThemes returns the available theme names.
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}
