// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui"
)

// isolateConfig points every config lookup at a fresh temp dir.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func stubTerminal(t *testing.T, terminal bool) *[]tui.Options {
	t.Helper()
	origTerm, origRun := isTerminal, runTUI
	t.Cleanup(func() {
		isTerminal = origTerm
		runTUI = origRun
	})

	var runs []tui.Options
	isTerminal = func() bool { return terminal }
	runTUI = func(opts tui.Options) error {
		runs = append(runs, opts)
		return nil
	}
	return &runs
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	isolateConfig(t)
	runs := stubTerminal(t, false)

	_, err := execute(t)
	if err == nil {
		t.Fatalf("expected an error without a terminal")
	}
	if !strings.Contains(err.Error(), "terminal") {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*runs) != 0 {
		t.Fatalf("tui must not start without a terminal")
	}
}

func TestRootStartsTUIOnConfiguredTab(t *testing.T) {
	isolateConfig(t)
	runs := stubTerminal(t, true)

	if _, err := execute(t, "--tab", "1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(*runs) != 1 {
		t.Fatalf("expected one tui run, got %d", len(*runs))
	}
	if got := (*runs)[0].InitialTab; got != nav.Tab1 {
		t.Fatalf("expected Tab1, got %v", got)
	}
}

func TestRootRejectsUnknownTab(t *testing.T) {
	isolateConfig(t)
	runs := stubTerminal(t, true)

	if _, err := execute(t, "--tab", "7"); err == nil {
		t.Fatalf("expected an error for tab 7")
	}
	if len(*runs) != 0 {
		t.Fatalf("tui must not start with an invalid tab")
	}
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	dir := isolateConfig(t)

	if _, err := execute(t, "replay"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	path := filepath.Join(dir, "tabnav", "tabnav.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Fatalf("unexpected default config:\n%s", data)
	}
}

func TestConfigFlagIsUsed(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("language: de\ninitial_tab: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "replay")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if appConfig.Language != "de" {
		t.Fatalf("expected language from config file, got %q", appConfig.Language)
	}
	if !strings.Contains(out, "current_tab: TabScreen1") {
		t.Fatalf("expected replay to start on tab 1:\n%s", out)
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	dir := isolateConfig(t)
	if _, err := execute(t, "--config", filepath.Join(dir, "nope.yaml"), "replay"); err == nil {
		t.Fatalf("expected an error for a missing --config file")
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TABNAV_LANGUAGE", "de")

	if _, err := execute(t, "replay"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if appConfig.Language != "de" {
		t.Fatalf("expected env to set language, got %q", appConfig.Language)
	}
}

func TestDotEnvFeedsConfig(t *testing.T) {
	dir := isolateConfig(t)
	os.Unsetenv("TABNAV_INITIAL_TAB")
	t.Cleanup(func() { os.Unsetenv("TABNAV_INITIAL_TAB") })
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TABNAV_INITIAL_TAB=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "replay")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "current_tab: TabScreen1") {
		t.Fatalf("expected .env to select tab 1:\n%s", out)
	}
}

func TestFirstRunDoesNotPersistFlags(t *testing.T) {
	dir := isolateConfig(t)

	out, err := execute(t, "--tab", "1", "--lang", "de", "replay")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "current_tab: TabScreen1") {
		t.Fatalf("expected --tab to apply to this run:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tabnav", "tabnav.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "initial_tab: 0") || !strings.Contains(string(data), "language: en") {
		t.Fatalf("flag values leaked into the config file:\n%s", data)
	}

	out, err = execute(t, "replay")
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}
	if !strings.Contains(out, "current_tab: TabScreen0") {
		t.Fatalf("expected the second run to start on tab 0:\n%s", out)
	}
}

func TestFirstRunWithInvalidTabKeepsConfigUsable(t *testing.T) {
	isolateConfig(t)

	if _, err := execute(t, "--tab", "5", "replay", "push"); err == nil {
		t.Fatalf("expected an error for tab 5")
	}
	if _, err := execute(t, "replay", "push"); err != nil {
		t.Fatalf("later run failed after an invalid --tab: %v", err)
	}
}
