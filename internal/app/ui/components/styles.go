package components

import (
	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/app/entry"
)

// Styles holds every style derived from a palette
type Styles struct {
	Palette Palette

	Title      lipgloss.Style
	Header     lipgloss.Style
	Separator  lipgloss.Style
	Help       lipgloss.Style
	Muted      lipgloss.Style
	Timestamp  lipgloss.Style
	Message    lipgloss.Style
	Source     lipgloss.Style
	Category   lipgloss.Style
	Row        lipgloss.Style
	Selected   lipgloss.Style
	Empty      lipgloss.Style
	Badge      lipgloss.Style
	Live       lipgloss.Style
	DetailKey  lipgloss.Style
	DetailText lipgloss.Style
	Stack      lipgloss.Style
	Notice     lipgloss.Style
	Error      lipgloss.Style
	Search     lipgloss.Style
	Container  lipgloss.Style
}

// NewStyles builds styles for the given palette
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Header:     lipgloss.NewStyle().Foreground(p.Text),
		Separator:  lipgloss.NewStyle().Foreground(p.Border),
		Help:       lipgloss.NewStyle().Foreground(p.Muted),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted),
		Timestamp:  lipgloss.NewStyle().Foreground(p.Muted),
		Message:    lipgloss.NewStyle().Foreground(p.Text),
		Source:     lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Category:   lipgloss.NewStyle().Foreground(p.Primary),
		Row:        lipgloss.NewStyle(),
		Selected:   lipgloss.NewStyle().Background(p.Selection).Bold(true),
		Empty:      lipgloss.NewStyle().Foreground(p.Muted).MarginTop(1),
		Badge:      lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		Live:       lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		DetailKey:  lipgloss.NewStyle().Foreground(p.Muted),
		DetailText: lipgloss.NewStyle().Foreground(p.Detail),
		Stack:      lipgloss.NewStyle().Foreground(p.Error),
		Notice:     lipgloss.NewStyle().Foreground(p.Primary),
		Error:      lipgloss.NewStyle().Foreground(p.Error),
		Search:     lipgloss.NewStyle().Foreground(p.Text),
		Container:  lipgloss.NewStyle().Padding(0, 1),
	}
}

// Level returns the bold accent style for a level
func (s Styles) Level(level entry.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Palette.LevelColor(level)).Bold(true)
}
