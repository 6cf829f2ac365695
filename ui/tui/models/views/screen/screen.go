// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package screen is the view of a root or nested stack screen: a label and
// the two buttons that push a deeper screen or show the bottom sheet.
package screen

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/logging"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/components/button"
	"github.com/toeirei/tabnav/ui/tui/models/components/router"
	"github.com/toeirei/tabnav/ui/tui/models/components/sheet"
	"github.com/toeirei/tabnav/ui/tui/models/helpers/theme"
	"github.com/toeirei/tabnav/ui/tui/util"
)

const (
	buttonPush = iota
	buttonSheet
)

// copyFunc is swapped in tests.
var copyFunc = clipboard.WriteAll

type Model struct {
	KeyMap  KeyMap
	screen  nav.Screen
	rc      router.Controll
	buttons []*button.Button
	active  int
	size    util.Size
	focused bool
}

func New(screen nav.Screen, rc router.Controll) *Model {
	return &Model{
		KeyMap: DefaultKeyMap(),
		screen: screen,
		rc:     rc,
		buttons: []*button.Button{
			buttonPush:  button.New(i18n.T("screen.button_push")),
			buttonSheet: button.New(i18n.T("screen.button_sheet")),
		},
	}
}

// Screen returns the navigation entry this view renders.
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
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.setActive(m.active - 1)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.setActive(m.active + 1)
	case key.Matches(keyMsg, m.KeyMap.Press):
		return m.press(m.active)
	case key.Matches(keyMsg, m.KeyMap.Push):
		return m.press(buttonPush)
	case key.Matches(keyMsg, m.KeyMap.Sheet):
		return m.press(buttonSheet)
	case key.Matches(keyMsg, m.KeyMap.Back):
		return m.rc.Pop(1)
	case key.Matches(keyMsg, m.KeyMap.Copy):
		return m.copyKey()
	}
	return nil
}

func (m *Model) press(b int) tea.Cmd {
	switch b {
	case buttonPush:
		return m.rc.Push()
	case buttonSheet:
		return sheet.Show(m.screen.Depth)
	}
	return nil
}

func (m *Model) setActive(i int) {
	m.active = (i + len(m.buttons)) % len(m.buttons)
	for j, b := range m.buttons {
		if j == m.active && m.focused {
			b.Focus()
		} else {
			b.Blur()
		}
	}
}

func (m *Model) copyKey() tea.Cmd {
	k := m.screen.Key()
	return func() tea.Msg {
		if err := copyFunc(k); err != nil {
			logging.Warnf("clipboard: %v", err)
			return util.StatusMsg(i18n.T("status.copy_failed", err))
		}
		return util.StatusMsg(i18n.T("status.copied", k))
	}
}

// Label is the text shown above the buttons.
func (m Model) Label() string {
	return i18n.T("screen.nested", map[string]any{
		"Depth": m.screen.Depth,
		"Tab":   int(m.screen.TabID),
	})
}

func (m Model) View() string {
	style := theme.Screen(m.screen.Style())
	bg := theme.Background(m.screen.Style())

	rows := []string{style.Bold(true).Render(m.Label()), ""}
	for _, b := range m.buttons {
		rows = append(rows, b.View(m.size.Width))
	}
	column := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return lipgloss.Place(
		m.size.Width, m.size.Height,
		lipgloss.Center, lipgloss.Center,
		column,
		lipgloss.WithWhitespaceBackground(bg),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.setActive(m.active)
	return nil, m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.setActive(m.active)
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
