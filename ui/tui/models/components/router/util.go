// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/ui/tui/util"
)

func (r *Router) activeModelGet() *util.Model {
	return r.models[len(r.models)-1]
}

func (r *Router) activeModelPop() *util.Model {
	model := r.activeModelGet()
	r.models = r.models[:len(r.models)-1]
	return model
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.activeModelGet()).Update(msg)
}

// activeModelFocus only focuses when the router itself holds focus, so a
// background tab never steals key input.
func (r *Router) activeModelFocus() tea.Cmd {
	if !r.focused {
		return nil
	}
	return util.FocusCmd(*r.activeModelGet())
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
		r.changed(),
	)
}

func (r *Router) changed() tea.Cmd {
	msg := ChangedMsg{Tab: r.tab, Top: r.state.Stack(r.tab).Top()}
	return func() tea.Msg { return msg }
}
