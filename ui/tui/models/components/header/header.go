// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/helpers/theme"
	"github.com/toeirei/tabnav/ui/tui/util"
	"github.com/toeirei/tabnav/util/slicest"
)

const crumbSeparator = " › "

// Model shows the app logo and the back history of the current tab.
type Model struct {
	state *nav.AppState
	size  util.Size
}

func New(state *nav.AppState) *Model {
	return &Model{state: state}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

// Breadcrumb lists the tab key followed by every screen on its stack.
func (m Model) Breadcrumb() string {
	tab := m.state.Current()
	keys := slicest.Map(m.state.Stack(tab).Screens(), nav.Screen.Key)
	return strings.Join(append([]string{tab.Key()}, keys...), crumbSeparator)
}

func (m Model) View() string {
	logo := lipgloss.NewStyle().Bold(true).Render(i18n.T("app.logo"))
	crumb := lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(m.Breadcrumb())
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		MaxWidth(m.size.Width).
		Render(lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, logo),
			lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, crumb),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
