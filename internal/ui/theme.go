package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours the renderer uses.
type Theme struct {
	Name string

	Selected lipgloss.Color // Selected row text
	Hint     lipgloss.Color // Placeholder text on the search line
}

var themes = map[string]Theme{
	"Default": defaultTheme(),
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return defaultTheme()
}

// ThemeNames returns the available theme names in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultTheme uses the 16-colour palette so it follows the user's terminal scheme.
func defaultTheme() Theme {
	return Theme{
		Name:     "Default",
		Selected: "3", // yellow
		Hint:     "8", // bright black
	}
}

func draculaTheme() Theme {
	return Theme{
		Name:     "Dracula",
		Selected: "#f1fa8c", // yellow
		Hint:     "#6272a4", // comment
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:     "Slate",
		Selected: "#38bdf8", // sky-400
		Hint:     "#64748b", // slate-500
	}
}
