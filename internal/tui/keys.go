package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of a demo page.
type KeyMap struct {
	Play   key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Play: key.NewBinding(
		key.WithKeys("enter", "p"),
		key.WithHelp("enter/p", "play"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more items"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "fewer items"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Grow, k.Shrink, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Grow, k.Shrink},
		{k.Help, k.Quit},
	}
}

// RocketKeyMap is the binding set of the rocket page, where digits go to
// the percentage input.
type RocketKeyMap struct {
	Launch key.Binding
	Nudge  key.Binding
	Drop   key.Binding
	Quit   key.Binding
}

var DefaultRocketKeyMap = RocketKeyMap{
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Nudge: key.NewBinding(
		key.WithKeys("up", "right"),
		key.WithHelp("↑", "+5% instantly"),
	),
	Drop: key.NewBinding(
		key.WithKeys("down", "left"),
		key.WithHelp("↓", "-5% instantly"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k RocketKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Nudge, k.Drop, k.Quit}
}

func (k RocketKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
