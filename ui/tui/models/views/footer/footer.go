// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/ui/tui/models/components/keyhelp"
	"github.com/toeirei/tabnav/ui/tui/models/helpers/theme"
	"github.com/toeirei/tabnav/ui/tui/util"
)

// Model shows the last status notice and the key help of the focused
// component merged with the global bindings.
type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     string
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject the global bindings
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case util.StatusMsg:
		m.status = string(msg)
		return nil
	case tea.KeyMsg:
		// a new interaction makes the old notice stale
		m.status = ""
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// Status returns the notice currently shown.
func (m Model) Status() string {
	return m.status
}

func (m Model) view() string {
	if m.status == "" {
		return m.help.View()
	}
	status := lipgloss.NewStyle().Foreground(theme.ColorAccent).Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View())
}

func (m Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			hPos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
