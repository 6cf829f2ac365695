// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package router renders one tab's navigation stack. The stack itself lives
// in nav.AppState; the router keeps one view model per stack entry so that
// each screen keeps its own focus state while covered.
package router

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/util"
)

// ScreenFactory builds the view model of a stack screen.
type ScreenFactory func(screen nav.Screen, rc Controll) util.Model

type Router struct {
	tab     nav.TabID
	state   *nav.AppState
	factory ScreenFactory
	size    util.Size
	models  []*util.Model
	focused bool
}

func New(state *nav.AppState, tab nav.TabID, factory ScreenFactory) (*Router, Controll) {
	rc := Controll{tab: tab}
	r := &Router{
		tab:     tab,
		state:   state,
		factory: factory,
	}
	// mirror whatever the stack already holds
	for _, screen := range state.Stack(tab).Screens() {
		r.models = append(r.models, r.newModel(screen))
	}
	return r, rc
}

func (r *Router) newModel(screen nav.Screen) *util.Model {
	m := r.factory(screen, Controll{tab: r.tab})
	return &m
}

func (r Router) Init() tea.Cmd {
	return (*r.activeModelGet()).Init()
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.size.Update(msg) {
		return r.activeModelUpdate(msg)
	}
	if r.isMsgOwner(msg) {
		switch msg := msg.(type) {
		case PushMsg:
			return r.handlePush(msg)
		case PopMsg:
			return r.handlePop(msg)
		}
	}
	if IsRouterMsg(msg) {
		// meant for another tab
		return nil
	}
	return r.activeModelUpdate(msg)
}

func (r Router) View() string {
	return (*r.activeModelGet()).View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return (*r.activeModelGet()).Focus()
}

func (r *Router) Blur() {
	r.focused = false
	(*r.activeModelGet()).Blur()
}

// Tab returns the tab this router belongs to.
func (r *Router) Tab() nav.TabID {
	return r.tab
}

// Depth returns the number of screens on the router's stack.
func (r *Router) Depth() int {
	return len(r.models)
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerTab() == r.tab
}
