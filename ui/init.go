// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package ui

import (
	"fmt"

	"github.com/toeirei/tabnav/internal/config"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/logging"
	"github.com/toeirei/tabnav/internal/nav"
)

// Initialize applies c to the process-wide services: the active language
// and the log level. verbose forces debug logging.
func Initialize(c config.Config, verbose bool) error {
	i18n.Init(c.Language)

	if c.Log.Level != "" {
		if err := logging.SetLevel(c.Log.Level); err != nil {
			return err
		}
	}
	if verbose {
		logging.SetDebug(true)
	}
	return nil
}

// InitialTab validates the configured start tab.
func InitialTab(c config.Config) (nav.TabID, error) {
	tab := nav.TabID(c.InitialTab)
	if !tab.Valid() {
		return nav.Tab0, fmt.Errorf("initial_tab: %w: %d", nav.ErrUnknownTab, c.InitialTab)
	}
	return tab, nil
}
