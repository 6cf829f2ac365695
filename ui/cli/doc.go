// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for tabnav using Cobra.
// It resolves configuration, initializes the shared services and either
// launches the TUI or runs a headless replay against internal/nav.
package cli
