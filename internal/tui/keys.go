package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the dashboard.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	MonthMode key.Binding
	YearMode  key.Binding
	SeasonMod key.Binding
	Play      key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Garden    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "forward"),
		),
		MonthMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month mode"),
		),
		YearMode: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year mode"),
		),
		SeasonMod: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "season mode"),
		),
		Play: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Garden: key.NewBinding(
			key.WithKeys("g", "tab"),
			key.WithHelp("g", "next garden"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
