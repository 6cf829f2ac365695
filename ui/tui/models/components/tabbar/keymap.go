// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package tabbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/tabnav/internal/i18n"
)

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Select, km.Next}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Select, km.Next, km.Prev}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("key.tab_next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", i18n.T("key.tab_prev")),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2"),
			key.WithHelp("1/2", i18n.T("key.tab_select")),
		),
	}
}
