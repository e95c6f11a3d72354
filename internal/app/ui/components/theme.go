package components

import (
	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/app/entry"
	"logdeck/internal/config"
)

// Palette is the set of colors for one theme
type Palette struct {
	Primary   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Selection lipgloss.Color
	Detail    lipgloss.Color

	Info    lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}

// DarkPalette is used on dark terminals
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#a78bfa"),
	Text:      lipgloss.Color("#e5e5e5"),
	Muted:     lipgloss.Color("#a3a3a3"),
	Border:    lipgloss.Color("#525252"),
	Selection: lipgloss.Color("#262626"),
	Detail:    lipgloss.Color("#d4d4d4"),
	Info:      lipgloss.Color("#60a5fa"),
	Warning:   lipgloss.Color("#fbbf24"),
	Error:     lipgloss.Color("#f87171"),
	Success:   lipgloss.Color("#34d399"),
}

// LightPalette is used on light terminals
var LightPalette = Palette{
	Primary:   lipgloss.Color("#7c3aed"),
	Text:      lipgloss.Color("#171717"),
	Muted:     lipgloss.Color("#737373"),
	Border:    lipgloss.Color("#d4d4d4"),
	Selection: lipgloss.Color("#e5e5e5"),
	Detail:    lipgloss.Color("#404040"),
	Info:      lipgloss.Color("#2563eb"),
	Warning:   lipgloss.Color("#d97706"),
	Error:     lipgloss.Color("#dc2626"),
	Success:   lipgloss.Color("#059669"),
}

// PaletteFor returns the palette for a theme name, dark for anything unknown
func PaletteFor(theme string) Palette {
	if theme == config.ThemeLight {
		return LightPalette
	}

	return DarkPalette
}

// NextTheme flips between light and dark
func NextTheme(theme string) string {
	if theme == config.ThemeLight {
		return config.ThemeDark
	}

	return config.ThemeLight
}

// LevelColor returns the accent color for a level
func (p Palette) LevelColor(level entry.Level) lipgloss.Color {
	switch level {
	case entry.LevelError:
		return p.Error
	case entry.LevelWarning:
		return p.Warning
	case entry.LevelSuccess:
		return p.Success
	default:
		return p.Info
	}
}
