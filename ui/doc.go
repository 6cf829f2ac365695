// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui contains the top-level UI wiring shared by the entry points.
//
// The CLI (ui/cli) resolves configuration and hands it to Initialize before
// it starts either the interactive TUI (ui/tui) or a headless replay.
package ui
