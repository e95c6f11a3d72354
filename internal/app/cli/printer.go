package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/app/entry"
	"logdeck/internal/app/ui/components"
)

// printer writes entries as single lines for headless mode
type printer struct {
	out       io.Writer
	timestamp lipgloss.Style
	category  lipgloss.Style
	source    lipgloss.Style
	levels    map[entry.Level]lipgloss.Style
}

// newPrinter builds styles bound to out so color is dropped for non-terminal writers
func newPrinter(out io.Writer, theme string) *printer {
	r := lipgloss.NewRenderer(out)
	palette := components.PaletteFor(theme)

	levels := make(map[entry.Level]lipgloss.Style, len(entry.Levels))
	for _, level := range entry.Levels {
		levels[level] = r.NewStyle().Bold(true).Foreground(palette.LevelColor(level))
	}

	return &printer{
		out:       out,
		timestamp: r.NewStyle().Foreground(palette.Muted),
		category:  r.NewStyle().Foreground(palette.Primary),
		source:    r.NewStyle().Foreground(palette.Muted).Italic(true),
		levels:    levels,
	}
}

// Print writes one entry
func (p *printer) Print(e entry.Entry) {
	level := p.levels[e.Level].Render(components.PadRight(strings.ToUpper(e.Level.String()), components.LevelColumnWidth))

	parts := []string{
		p.timestamp.Render(e.Timestamp.Format(components.TimestampFormat)),
		level,
		p.category.Render(components.PadRight(e.Category.Label(), components.CategoryWidth)),
		e.Message,
	}

	if e.HasSource() {
		parts = append(parts, p.source.Render("("+e.Source+")"))
	}

	fmt.Fprintln(p.out, strings.Join(parts, " "))
}
