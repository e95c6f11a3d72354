package console

import (
	"github.com/charmbracelet/bubbles/key"

	"logdeck/internal/app/ui/components"
)

// KeyMap defines the key bindings for the console view
type KeyMap struct {
	components.KeyMap
	Search   key.Binding
	Done     key.Binding
	Level    key.Binding
	Category key.Binding
	Sort     key.Binding
	Reset    key.Binding
	Stream   key.Binding
	Expand   key.Binding
	Theme    key.Binding
	Export   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),
		Level: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "level"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset"),
		),
		Stream: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stream"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "details"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Level, k.Category, k.Sort, k.Expand, k.Stream, k.Theme, k.Export, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.Level, k.Category, k.Sort, k.Reset},
		{k.Expand, k.Stream, k.Theme, k.Export, k.Quit, k.ForceQuit},
	}
}

// searchKeys is the help shown while the search box has focus
type searchKeys struct {
	done key.Binding
	quit key.Binding
}

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.done, k.quit}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
