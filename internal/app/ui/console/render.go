package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/app/entry"
	"logdeck/internal/app/ui/components"
)

// detailLine is one labelled line of an expanded entry
type detailLine struct {
	Label string
	Text  string
	Stack bool
}

// detailLines lists the present detail variants; absent variants render nothing
func detailLines(d *entry.Details) []detailLine {
	if d.IsEmpty() {
		return nil
	}

	lines := make([]detailLine, 0, 4)

	if t := d.Tokens; t != nil {
		lines = append(lines, detailLine{
			Label: "Tokens",
			Text:  fmt.Sprintf("Input: %d  Output: %d  Total: %d", t.Input, t.Output, t.Total),
		})
	}

	if s := d.Storage; s != nil {
		lines = append(lines, detailLine{
			Label: "Storage",
			Text:  fmt.Sprintf("Used: %s / %s  Usage: %d%%", s.Used, s.Limit, s.Percentage),
		})
	}

	if w := d.Workflow; w != nil {
		lines = append(lines, detailLine{
			Label: "Workflow",
			Text:  fmt.Sprintf("ID: %s  Step: %s  Duration: %dms", w.ID, w.Step, w.Duration),
		})
	}

	if f := d.Error; f != nil {
		lines = append(lines, detailLine{Label: "Error", Text: "Code: " + f.Code})

		for _, frame := range strings.Split(f.Stack, "\n") {
			if strings.TrimSpace(frame) == "" {
				continue
			}

			lines = append(lines, detailLine{Text: frame, Stack: true})
		}
	}

	return lines
}

// renderEntry renders a row and, when expanded, its detail block
func (m Model) renderEntry(e entry.Entry, selected bool) string {
	s := m.ui.styles
	width := m.rowWidth()

	marker := components.IndicatorNone
	if e.HasDetails() {
		marker = components.IndicatorFolded
		if m.state.expansion.Has(e.ID) {
			marker = components.IndicatorExpanded
		}
	}

	indicator := components.IndicatorEmpty
	if selected {
		indicator = components.IndicatorSelected
	}

	timestamp := e.Timestamp.Format(components.TimestampFormat)
	level := components.PadRight(strings.ToUpper(e.Level.String()), components.LevelColumnWidth)
	category := components.TruncateAndPad(e.Category.Label(), components.CategoryWidth)

	source := ""
	if e.HasSource() {
		source = "  " + e.Source
	}

	var row string

	if selected {
		plain := fmt.Sprintf("%s%s %s %s %s %s%s", indicator, timestamp, level, category, marker, e.Message, source)
		row = s.Selected.Width(width).Render(components.Truncate(plain, width))
	} else {
		row = fmt.Sprintf("%s%s %s %s %s %s%s",
			indicator,
			s.Timestamp.Render(timestamp),
			s.Level(e.Level).Render(level),
			s.Category.Render(category),
			s.Muted.Render(marker),
			s.Message.Render(e.Message),
			s.Source.Render(source),
		)
	}

	if !m.state.expansion.Has(e.ID) {
		return row
	}

	lines := []string{row}
	indent := strings.Repeat(" ", components.DetailIndent+lipgloss.Width(indicator))

	for _, line := range detailLines(e.Details) {
		if line.Stack {
			lines = append(lines, indent+"  "+s.Stack.Render(line.Text))
			continue
		}

		label := components.PadRight(line.Label, 9)
		lines = append(lines, indent+s.DetailKey.Render(label)+s.DetailText.Render(line.Text))
	}

	return strings.Join(lines, "\n")
}

// renderList rebuilds the viewport content and keeps the selection in view
func (m *Model) renderList() {
	if len(m.state.visible) == 0 {
		m.ui.viewport.SetContent("")
		m.ui.viewport.GotoTop()

		return
	}

	blocks := make([]string, len(m.state.visible))
	line, selStart, selEnd := 0, 0, 0

	for i, e := range m.state.visible {
		blocks[i] = m.renderEntry(e, i == m.state.selected)
		height := lipgloss.Height(blocks[i])

		if i == m.state.selected {
			selStart = line
			selEnd = line + height - 1
		}

		line += height
	}

	m.ui.viewport.SetContent(strings.Join(blocks, "\n"))

	if m.state.follow {
		m.ui.viewport.GotoTop()
		return
	}

	switch {
	case selStart < m.ui.viewport.YOffset:
		m.ui.viewport.SetYOffset(selStart)
	case selEnd >= m.ui.viewport.YOffset+m.ui.viewport.Height:
		m.ui.viewport.SetYOffset(selEnd - m.ui.viewport.Height + 1)
	}
}

func (m Model) rowWidth() int {
	if m.ui.viewport.Width > 0 {
		return m.ui.viewport.Width
	}

	return components.DefaultViewportWidth
}
