// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for tabnav.
//
// Usage:
//
//	go run . [flags]
//	./tabnav [flags]
//
// This launches the tabnav CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/tabnav/internal/logging"
	"github.com/toeirei/tabnav/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.SetOutput(os.Stderr)
		logging.Errorf("tabnav: %v", err)
		os.Exit(1)
	}
}
