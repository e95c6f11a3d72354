package console

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/entry"
	"logdeck/internal/app/export"
	"logdeck/internal/app/monitor"
	"logdeck/internal/app/projection"
	"logdeck/internal/app/store"
	"logdeck/internal/app/stream"
	"logdeck/internal/app/ui/components"
	"logdeck/internal/config/logger"
)

// Deps groups the services the console drives
type Deps struct {
	Bus      bus.Bus
	Store    store.Store
	Streamer stream.Streamer
	Exporter export.Exporter
	Monitor  monitor.Monitor
}

// Model is the Bubble Tea model for the log console
type Model struct {
	ctx      context.Context
	store    store.Store
	streamer stream.Streamer
	exporter export.Exporter
	monitor  monitor.Monitor
	msgChan  <-chan bus.Message

	state struct {
		criteria  projection.Criteria
		expansion projection.Expansion
		visible   []entry.Entry
		stats     projection.Stats
		selected  int
		follow    bool
		theme     string
		ready     bool
		searching bool
		notice    string
		app       monitor.Stats
	}

	ui struct {
		width    int
		height   int
		keys     KeyMap
		help     help.Model
		search   textinput.Model
		viewport viewport.Model
		styles   components.Styles
		pulse    *components.Pulse
	}

	log logger.Logger
}

// NewModel creates the console model and subscribes it to the bus
func NewModel(ctx context.Context, theme string, deps Deps, log logger.Logger) Model {
	log = log.WithComponent("UI")
	msgChan := deps.Bus.Subscribe(ctx)

	log.Debug().Msg("Created model and subscribed to events")

	m := Model{
		ctx:      ctx,
		store:    deps.Store,
		streamer: deps.Streamer,
		exporter: deps.Exporter,
		monitor:  deps.Monitor,
		msgChan:  msgChan,
		log:      log,
	}

	m.state.criteria = projection.DefaultCriteria()
	m.state.expansion = projection.NewExpansion()
	m.state.follow = true
	m.state.theme = theme

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search messages and sources"
	search.CharLimit = 256

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.search = search
	m.ui.viewport = viewport.New(components.DefaultViewportWidth, components.MinListHeight)
	m.ui.styles = components.NewStyles(components.PaletteFor(theme))
	m.ui.pulse = components.NewPulse()

	m.syncStreaming()
	m.refresh()

	return m
}

// Init starts the bus listener, the animation tick and the stats sampler
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForMsgCmd(m.msgChan),
		tickCmd(),
		statsCmd(m.ctx, m.monitor),
	)
}

// refresh recomputes the projection from a fresh store snapshot
func (m *Model) refresh() {
	selectedID := ""
	if !m.state.follow && m.state.selected < len(m.state.visible) {
		selectedID = m.state.visible[m.state.selected].ID
	}

	m.state.visible = projection.Project(m.store.Snapshot(), m.state.criteria)
	m.state.stats = projection.Summarize(m.state.visible)
	m.state.expansion = m.state.expansion.Prune(func(id string) bool {
		_, ok := m.store.Find(id)
		return ok
	})

	m.state.selected = m.indexOf(selectedID)
	m.renderList()
}

// indexOf finds id in the visible list, falling back to a clamped selection
func (m *Model) indexOf(id string) int {
	if m.state.follow || id == "" {
		return m.clamp(0)
	}

	for i, e := range m.state.visible {
		if e.ID == id {
			return i
		}
	}

	return m.clamp(m.state.selected)
}

func (m *Model) clamp(i int) int {
	if i >= len(m.state.visible) {
		i = len(m.state.visible) - 1
	}

	if i < 0 {
		i = 0
	}

	return i
}

// selectedEntry returns the entry under the cursor
func (m Model) selectedEntry() (entry.Entry, bool) {
	if m.state.selected < 0 || m.state.selected >= len(m.state.visible) {
		return entry.Entry{}, false
	}

	return m.state.visible[m.state.selected], true
}

// syncStreaming aligns the Live pulse with the streamer state
func (m *Model) syncStreaming() {
	if m.streamer.IsStreaming() {
		if !m.ui.pulse.IsActive() {
			m.ui.pulse.Start()
		}

		return
	}

	if m.ui.pulse.IsActive() {
		m.ui.pulse.Stop()
	}
}
