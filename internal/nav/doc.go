// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package nav holds the navigation state of tabnav: two fixed tabs, a
// navigation stack per tab and a single optional bottom sheet.
//
// The package has no rendering concerns. The terminal UI in ui/tui reads and
// mutates an AppState from inside its update loop. None of the types here are
// safe for concurrent use.
package nav
