package trainer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the control keybindings for the trainer. They are
// deliberately chosen to not collide with any trained chord: tab, enter
// and ctrl+c resolve to nothing in the command table.
type KeyMap struct {
	Skip     key.Binding
	Continue key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Skip: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "skip"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "go again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
