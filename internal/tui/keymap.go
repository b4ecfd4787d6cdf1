package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the explorer. Plain letters stay free
// for the value input field, so option toggles use control combinations.
type KeyMap struct {
	Quit          key.Binding
	Submit        key.Binding
	Shortform     key.Binding
	ExpLarge      key.Binding
	ExpSmall      key.Binding
	ShowDecimal   key.Binding
	PrecisionUp   key.Binding
	PrecisionDown key.Binding
}

// DefaultKeyMap returns the standard explorer key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep in history"),
		),
		Shortform: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "shortform"),
		),
		ExpLarge: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "exp large"),
		),
		ExpSmall: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "exp small"),
		),
		ShowDecimal: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "show decimal"),
		),
		PrecisionUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "precision +"),
		),
		PrecisionDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "precision -"),
		),
	}
}
