// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handle PushMsg
func (r *Router) handlePush(_ PushMsg) tea.Cmd {
	screen, ok := r.state.Push(r.tab)
	if !ok {
		return nil
	}
	// blur recent model
	(*r.activeModelGet()).Blur()
	// push new model
	r.models = append(r.models, r.newModel(screen))
	// initialize pushed model
	return r.activeModelInit()
}

// handle PopMsg
func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	popped := false
	for range max(msg.Count, 1) {
		if _, ok := r.state.PopTab(r.tab); !ok {
			break
		}
		(*r.activeModelPop()).Blur()
		popped = true
	}
	if !popped {
		return nil
	}
	return tea.Batch(
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
		r.changed(),
	)
}
