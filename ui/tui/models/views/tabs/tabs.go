// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tabs holds one router per tab and shows the current one.
package tabs

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/components/router"
	"github.com/toeirei/tabnav/ui/tui/models/components/tabbar"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type Model struct {
	state   *nav.AppState
	routers map[nav.TabID]*util.Model
	// shown is the tab whose router currently holds focus
	shown   nav.TabID
	focused bool
}

func New(state *nav.AppState, factory router.ScreenFactory) *Model {
	m := &Model{
		state:   state,
		routers: make(map[nav.TabID]*util.Model, len(nav.Tabs())),
		shown:   state.Current(),
	}
	for _, tab := range nav.Tabs() {
		r, _ := router.New(state, tab, factory)
		m.routers[tab] = util.ModelPointer(r)
	}
	return m
}

func (m *Model) active() *util.Model {
	return m.routers[m.shown]
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, tab := range nav.Tabs() {
		cmds = append(cmds, (*m.routers[tab]).Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// the tab bar has already switched the state, follow it
	if m.state.Current() != m.shown {
		return tea.Batch(m.follow(), m.Update(msg))
	}

	switch msg := msg.(type) {
	case tabbar.SelectedMsg:
		return nil
	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		for _, tab := range nav.Tabs() {
			cmds = append(cmds, (*m.routers[tab]).Update(msg))
		}
		return tea.Batch(cmds...)
	case tea.KeyMsg:
		return (*m.active()).Update(msg)
	}

	if router.IsRouterMsg(msg) {
		// every router checks whether it owns the message
		var cmds []tea.Cmd
		for _, tab := range nav.Tabs() {
			cmds = append(cmds, (*m.routers[tab]).Update(msg))
		}
		return tea.Batch(cmds...)
	}
	return (*m.active()).Update(msg)
}

// follow moves focus to the router of the current tab.
func (m *Model) follow() tea.Cmd {
	if m.focused {
		(*m.active()).Blur()
	}
	m.shown = m.state.Current()
	if !m.focused {
		return nil
	}
	return util.FocusCmd(*m.active())
}

func (m Model) View() string {
	return (*m.routers[m.shown]).View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return (*m.active()).Focus()
}

func (m *Model) Blur() {
	m.focused = false
	(*m.active()).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
