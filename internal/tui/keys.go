package tui

import "github.com/charmbracelet/bubbles/key"

// shellKeys holds key bindings for the interactive shell.
type shellKeys struct {
	Submit   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// ShortHelp returns the shell bindings for the help bar.
func (k shellKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PageUp, k.PageDown, k.Quit}
}

// FullHelp returns the shell bindings grouped for expanded help.
func (k shellKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Quit},
		{k.PageUp, k.PageDown},
	}
}

// ShellKeyMap returns the key bindings for the interactive shell.
// Letter keys are left to the text input.
func ShellKeyMap() shellKeys {
	return shellKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
