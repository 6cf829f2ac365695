// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI. It renders an nav.AppState and
// turns key presses into the navigation operations push, show sheet, select
// tab and back. Navigation rules live in internal/nav.
package tui
