// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package bottomsheet is the view shown inside the bottom sheet layer. It
// displays a static label and offers no navigation besides dismissing.
package bottomsheet

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/components/sheet"
	"github.com/toeirei/tabnav/ui/tui/models/helpers/theme"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type KeyMap struct {
	Dismiss key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Dismiss}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Dismiss}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", i18n.T("key.dismiss")),
		),
	}
}

type Model struct {
	KeyMap  KeyMap
	screen  nav.Screen
	size    util.Size
	focused bool
}

func New(screen nav.Screen) *Model {
	return &Model{
		KeyMap: DefaultKeyMap(),
		screen: screen,
	}
}

func (m Model) Screen() nav.Screen {
	return m.screen
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && m.focused {
		if key.Matches(msg, m.KeyMap.Dismiss) {
			return sheet.Dismiss()
		}
	}
	return nil
}

func (m Model) Label() string {
	return i18n.T("sheet.label", map[string]any{"Depth": m.screen.Depth})
}

func (m Model) View() string {
	return lipgloss.Place(
		m.size.Width, m.size.Height,
		lipgloss.Center, lipgloss.Center,
		theme.Screen(m.screen.Style()).Render(m.Label()),
		lipgloss.WithWhitespaceBackground(theme.Background(m.screen.Style())),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
