package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rileyhilliard/fasam/internal/dashboard"
)

// keyMap exposes the dashboard's bindings to bubbles/help.
type keyMap struct {
	bindings []key.Binding
}

func newKeyMap(bindings []dashboard.Binding) keyMap {
	km := keyMap{bindings: make([]key.Binding, 0, len(bindings))}
	for _, b := range bindings {
		km.bindings = append(km.bindings, key.NewBinding(
			key.WithKeys(b.Key),
			key.WithHelp(b.Key, b.Desc),
		))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}
