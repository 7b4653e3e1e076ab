package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Generate  key.Binding
	Reset     key.Binding
	Download  key.Binding
	Open      key.Binding
	Copy      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Activate  key.Binding
	Leave     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Generate:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset sample")),
		Download:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "download")),
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open in player")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy url")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press button")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave editor")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Reset, k.Download, k.Open, k.Copy, k.NextFocus, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Reset, k.Download},
		{k.Open, k.Copy},
		{k.NextFocus, k.PrevFocus, k.Activate, k.Leave, k.Quit},
	}
}

// reserved reports whether msg belongs to an action shortcut, enabled or not.
// Reserved keys never reach the editor, so a disabled shortcut stays a no-op.
func (k keyMap) reserved(msg tea.KeyMsg) bool {
	pressed := msg.String()
	for _, binding := range []key.Binding{k.Generate, k.Reset, k.Download, k.Open, k.Copy} {
		for _, candidate := range binding.Keys() {
			if candidate == pressed {
				return true
			}
		}
	}
	return false
}
