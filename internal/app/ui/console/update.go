package console

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/entry"
	"logdeck/internal/app/export"
	"logdeck/internal/app/monitor"
	"logdeck/internal/app/projection"
	"logdeck/internal/app/ui/components"
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// statsMsg carries a fresh sample of the console's own resource usage
type statsMsg monitor.Stats

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state.searching {
			return m.handleSearchKey(msg)
		}

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil

	case tickMsg:
		if m.ui.pulse.IsActive() {
			m.ui.pulse.Update()
		}

		return m, tickCmd()

	case statsMsg:
		m.state.app = monitor.Stats(msg)

		return m, statsCmd(m.ctx, m.monitor)

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("TUI: Event channel closed, quitting")

		return m, tea.Quit
	}

	return m, nil
}

// resize fits the list viewport between the header and the footer
func (m *Model) resize(width, height int) {
	m.ui.width = width
	m.ui.height = height
	m.ui.help.Width = width
	m.ui.search.Width = width / 2

	listHeight := height - components.ChromeHeight
	if listHeight < components.MinListHeight {
		listHeight = components.MinListHeight
	}

	m.ui.viewport.Width = width - 2
	m.ui.viewport.Height = listHeight
	m.state.ready = true

	m.renderList()
}

// handleKeyPress processes keyboard input in list mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		m.log.Debug().Msg("TUI: Quit requested")
		m.stopStream()

		return m, tea.Quit

	case key.Matches(msg, keys.Search):
		m.state.searching = true
		return m, m.ui.search.Focus()

	case key.Matches(msg, keys.Level):
		m.state.criteria = m.state.criteria.NextLevel()
		m.refresh()

	case key.Matches(msg, keys.Category):
		m.state.criteria = m.state.criteria.NextCategory()
		m.refresh()

	case key.Matches(msg, keys.Sort):
		m.state.criteria = m.state.criteria.NextSort()
		m.refresh()

	case key.Matches(msg, keys.Reset):
		m.state.criteria = projection.DefaultCriteria()
		m.ui.search.SetValue("")
		m.state.follow = true
		m.refresh()

	case key.Matches(msg, keys.Stream):
		m.toggleStream()

	case key.Matches(msg, keys.Expand):
		m.toggleExpansion()

	case key.Matches(msg, keys.Theme):
		m.state.theme = components.NextTheme(m.state.theme)
		m.ui.styles = components.NewStyles(components.PaletteFor(m.state.theme))
		m.renderList()

	case key.Matches(msg, keys.Export):
		m.state.notice = "exporting…"
		return m, exportCmd(m.exporter, m.state.visible)

	case key.Matches(msg, keys.Up):
		m.move(-1)

	case key.Matches(msg, keys.Down):
		m.move(1)

	case key.Matches(msg, keys.PageUp):
		m.move(-m.pageSize())

	case key.Matches(msg, keys.PageDown):
		m.move(m.pageSize())

	case key.Matches(msg, keys.Top):
		m.move(-len(m.state.visible))

	case key.Matches(msg, keys.Bottom):
		m.move(len(m.state.visible))
	}

	return m, nil
}

// handleSearchKey feeds keys to the search box and re-projects on every edit
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.stopStream()
		return m, tea.Quit
	}

	if key.Matches(msg, m.ui.keys.Done) {
		m.state.searching = false
		m.ui.search.Blur()

		return m, nil
	}

	var cmd tea.Cmd

	m.ui.search, cmd = m.ui.search.Update(msg)

	if value := m.ui.search.Value(); value != m.state.criteria.Search {
		m.state.criteria = m.state.criteria.WithSearch(value)
		m.refresh()
	}

	return m, cmd
}

// move shifts the selection; following resumes only at the top of the list
func (m *Model) move(delta int) {
	if len(m.state.visible) == 0 {
		return
	}

	m.state.selected = m.clamp(m.state.selected + delta)
	m.state.follow = m.state.selected == 0
	m.renderList()
}

func (m Model) pageSize() int {
	if m.ui.viewport.Height < 1 {
		return 1
	}

	return m.ui.viewport.Height
}

// toggleStream flips the synthetic feed on or off
func (m *Model) toggleStream() {
	if err := m.streamer.Toggle(m.ctx); err != nil {
		m.log.Error().Err(err).Msg("TUI: Failed to toggle stream")
		m.state.notice = fmt.Sprintf("stream: %v", err)
	}

	if m.streamer.IsStreaming() {
		m.state.follow = true
		m.refresh()
	}

	m.syncStreaming()
}

func (m *Model) stopStream() {
	if err := m.streamer.Stop(context.Background()); err != nil {
		m.log.Warn().Err(err).Msg("TUI: Failed to stop stream")
	}
}

// toggleExpansion expands or folds the selected entry when it has details
func (m *Model) toggleExpansion() {
	e, ok := m.selectedEntry()
	if !ok || !e.HasDetails() {
		return
	}

	m.state.expansion = m.state.expansion.Toggle(e.ID)
	m.renderList()
}

// handleMessage dispatches bus messages to specific handlers
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventEntryAppended:
		m.refresh()
	case bus.EventStreamStarted, bus.EventStreamStopped:
		m.syncStreaming()
	case bus.EventExportFinished:
		m.handleExportFinished(msg)
	}

	return m, waitForMsgCmd(m.msgChan)
}

func (m *Model) handleExportFinished(msg bus.Message) {
	data, ok := msg.Data.(bus.ExportFinished)
	if !ok {
		m.log.Error().Msg("TUI: Failed to cast ExportFinished")
		return
	}

	if data.Error != nil {
		m.state.notice = fmt.Sprintf("export failed: %v", data.Error)
		return
	}

	m.state.notice = fmt.Sprintf("exported %d entries to %s", data.Count, data.Path)
}

// waitForMsgCmd returns a command that waits for the next message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd samples the console process after StatsInterval
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	if mon == nil {
		return nil
	}

	return tea.Tick(components.StatsInterval, func(time.Time) tea.Msg {
		stats, err := mon.Self(ctx)
		if err != nil {
			return statsMsg{}
		}

		return statsMsg(stats)
	})
}

// exportCmd writes the projected entries; the outcome arrives as a bus message
func exportCmd(exp export.Exporter, entries []entry.Entry) tea.Cmd {
	snapshot := make([]entry.Entry, len(entries))
	copy(snapshot, entries)

	return func() tea.Msg {
		_, _ = exp.Export(snapshot)
		return nil
	}
}
