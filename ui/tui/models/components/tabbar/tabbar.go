// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tabbar is the selector bar below the tab content. It reacts to its
// keys regardless of focus, since switching tabs is always possible.
package tabbar

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/helpers/theme"
	"github.com/toeirei/tabnav/ui/tui/util"
	"github.com/toeirei/tabnav/util/slicest"
)

// SelectedMsg is emitted after the current tab changed.
type SelectedMsg struct {
	Tab nav.TabID
}

type Model struct {
	KeyMap KeyMap
	state  *nav.AppState
	size   util.Size
}

func New(state *nav.AppState) *Model {
	return &Model{
		KeyMap: DefaultKeyMap(),
		state:  state,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	current := m.state.Current()
	switch {
	case key.Matches(keyMsg, m.KeyMap.Next):
		return m.selectTab(current.Next())
	case key.Matches(keyMsg, m.KeyMap.Prev):
		return m.selectTab(current.Prev())
	case key.Matches(keyMsg, m.KeyMap.Select):
		// selector keys are 1-based
		n, err := strconv.Atoi(keyMsg.String())
		if err != nil {
			return nil
		}
		return m.selectTab(nav.TabID(n - 1))
	}
	return nil
}

func (m *Model) selectTab(tab nav.TabID) tea.Cmd {
	if !m.state.Select(tab) {
		return nil
	}
	return func() tea.Msg { return SelectedMsg{Tab: tab} }
}

func (m Model) view() string {
	current := m.state.Current()
	items := slicest.Map(nav.Tabs(), func(tab nav.TabID) string {
		label := tab.Icon() + " " + i18n.T("tab.title", map[string]any{"Tab": int(tab)})
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.ColorMuted)
		if tab == current {
			style = style.Foreground(theme.Background(nav.StyleForTab(tab))).Bold(true).Underline(true)
		}
		return style.Render(label)
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, m.view()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.KeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
