package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the console. Letter keys are
// left to the query input, so everything else sits on ctrl or function keys.
type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Submit       key.Binding
	NextEndpoint key.Binding
	PrevEndpoint key.Binding
	CycleTheme   key.Binding
	ClearHistory key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	ClearInput   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Send query"),
		),
		NextEndpoint: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next endpoint"),
		),
		PrevEndpoint: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous endpoint"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Clear history"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Clear input"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextEndpoint, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextEndpoint, k.PrevEndpoint, k.ClearInput},
		{k.PageUp, k.PageDown, k.ClearHistory},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
