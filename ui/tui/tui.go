// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/buildvars"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/logging"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/views/root"
)

// Options configure a TUI run.
type Options struct {
	InitialTab nav.TabID
	// ProgramOptions are appended to the defaults, tests use them to swap
	// input and output.
	ProgramOptions []tea.ProgramOption
}

// NewModel creates the navigation state and the UI tree around it.
func NewModel(opts Options) (*nav.AppState, root.Model) {
	state := nav.NewAppState(opts.InitialTab)
	title := fmt.Sprintf("%s %s", i18n.T("app.title"), buildvars.VersionOrDefault("dev"))
	return state, *root.New(state, title)
}

// Run blocks until the user quits.
func Run(opts Options) error {
	state, model := NewModel(opts)
	logging.Infof("starting tui on %s", state.Current().Key())

	programOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)
	_, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logging.Infof("tui stopped on %s", state.Displayed().Screen.Key())
	return nil
}
