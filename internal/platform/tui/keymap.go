package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the simulator screen.
type KeyMap struct {
	PrevParam key.Binding
	NextParam key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	Ignite    key.Binding
	PlayPause key.Binding
	StepOnce  key.Binding
	Reset     key.Binding
	Randomize key.Binding
	Save      key.Binding
	Scenarios key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Ignite, k.PlayPause, k.Reset, k.Randomize, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevParam, k.NextParam, k.Decrease, k.Increase},
		{k.Ignite, k.PlayPause, k.StepOnce, k.Reset},
		{k.Randomize, k.Save, k.Scenarios, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevParam: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev param"),
		),
		NextParam: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next param"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "increase"),
		),
		Ignite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "start fire"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		StepOnce: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset forest"),
		),
		Randomize: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "randomize"),
		),
		Save: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "save scenario"),
		),
		Scenarios: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "scenarios"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
