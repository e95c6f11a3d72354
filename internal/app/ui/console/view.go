package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/app/entry"
	"logdeck/internal/app/monitor"
	"logdeck/internal/app/ui/components"
	"logdeck/internal/config"
)

// View renders the UI
func (m Model) View() string {
	if !m.state.ready {
		return "Initializing…"
	}

	s := m.ui.styles
	width := m.ui.width - 2

	sections := []string{
		components.RenderHeader(s, width, m.renderTitle(), m.renderCount()),
		m.renderToolbar(),
		m.renderStats(),
		"",
		m.renderBody(),
		s.Notice.Render(m.state.notice),
		components.RenderFooter(s, width, m.renderHelp()),
	}

	return s.Container.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTitle renders the app name with the Live badge while streaming
func (m Model) renderTitle() string {
	s := m.ui.styles
	title := s.Title.Render(config.AppName)

	if m.streamer.IsStreaming() {
		title += " " + m.ui.pulse.Render(s.Live) + s.Live.Render(" Live")
	}

	return title
}

// renderCount renders visible versus stored entry counts
func (m Model) renderCount() string {
	return m.ui.styles.Muted.Render(fmt.Sprintf("%d/%d entries", len(m.state.visible), m.store.Len()))
}

// renderToolbar renders the search box and active filters
func (m Model) renderToolbar() string {
	s := m.ui.styles
	criteria := m.state.criteria

	search := m.ui.search.View()
	if !m.state.searching && criteria.Search == "" {
		search = s.Muted.Render("/ search")
	}

	filters := fmt.Sprintf("%s %s  %s %s  %s %s",
		s.Muted.Render("level"), s.Header.Render(criteria.Level.Label()),
		s.Muted.Render("category"), s.Header.Render(criteria.Category.Label()),
		s.Muted.Render("sort"), s.Header.Render(criteria.SortBy.Label()),
	)

	return search + "   " + filters
}

// renderStats renders totals over the projected list plus process stats
func (m Model) renderStats() string {
	s := m.ui.styles
	stats := m.state.stats

	line := fmt.Sprintf("%s %d  %s %s  %s %s",
		s.Muted.Render("Total"), stats.Total,
		s.Muted.Render("Errors"), s.Level(entry.LevelError).Render(fmt.Sprint(stats.Errors)),
		s.Muted.Render("Warnings"), s.Level(entry.LevelWarning).Render(fmt.Sprint(stats.Warnings)),
	)

	if m.state.app != (monitor.Stats{}) {
		line += "   " + s.Muted.Render(m.state.app.String())
	}

	return line
}

// renderBody renders the entry list or an empty state
func (m Model) renderBody() string {
	if len(m.state.visible) == 0 {
		empty := "No logs yet"
		if m.store.Len() > 0 {
			empty = "No logs match the current filters"
		}

		return lipgloss.NewStyle().Height(m.ui.viewport.Height).Render(m.ui.styles.Empty.Render(empty))
	}

	return m.ui.viewport.View()
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	if m.state.searching {
		return m.ui.help.View(searchKeys{done: m.ui.keys.Done, quit: m.ui.keys.ForceQuit})
	}

	return m.ui.help.View(m.ui.keys)
}
