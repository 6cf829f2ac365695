// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package screen

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/tabnav/internal/i18n"
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Press key.Binding
	Push  key.Binding
	Sheet key.Binding
	Back  key.Binding
	Copy  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Press, km.Push, km.Sheet, km.Back}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down, km.Press}, {km.Push, km.Sheet, km.Back}, {km.Copy}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("key.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("key.down")),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", i18n.T("key.press")),
		),
		Push: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", i18n.T("key.push")),
		),
		Sheet: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", i18n.T("key.sheet")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", i18n.T("key.back")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("key.copy")),
		),
	}
}
