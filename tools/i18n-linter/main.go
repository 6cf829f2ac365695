// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every translation id used in the Go sources exists
// in the primary locale and that every other locale carries the same ids.
//
// Usage, from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// skipDirs are never scanned for sources.
var skipDirs = map[string]struct{}{"tools": {}, "_examples": {}, ".git": {}}

// Location stores the file and line number of a found id.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run.
type Report struct {
	// Undefined ids are used in code but missing from the primary locale.
	Undefined map[string]Location
	// Orphaned ids are defined in the primary locale but never used.
	Orphaned []string
	// Missing maps a secondary locale file to the primary ids it lacks.
	Missing map[string][]string
}

func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

func main() {
	report, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printReport(report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	report := Report{Undefined: map[string]Location{}, Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report, fmt.Errorf("loading primary locale: %w", err)
	}

	for id, loc := range used {
		if _, ok := primary[id]; !ok {
			report.Undefined[id] = loc
		}
	}
	for id := range primary {
		if _, ok := used[id]; !ok {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	slices.Sort(report.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for id := range primary {
			if _, ok := keys[id]; !ok {
				missing = append(missing, id)
			}
		}
		slices.Sort(missing)
		report.Missing[filepath.Base(file)] = missing
	}
	return report, nil
}

func printReport(r Report) {
	fmt.Println("--- Undefined ids (used in code, missing in " + primaryLocale + ") ---")
	if len(r.Undefined) == 0 {
		fmt.Println("  none")
	}
	ids := make([]string, 0, len(r.Undefined))
	for id := range r.Undefined {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		loc := r.Undefined[id]
		fmt.Printf("  - %s (%s:%d)\n", id, loc.Filepath, loc.Line)
	}

	fmt.Println("--- Orphaned ids ---")
	if len(r.Orphaned) == 0 {
		fmt.Println("  none")
	}
	for _, id := range r.Orphaned {
		fmt.Printf("  - %s\n", id)
	}

	files := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		files = append(files, file)
	}
	slices.Sort(files)
	for _, file := range files {
		fmt.Printf("--- %s ---\n", file)
		if len(r.Missing[file]) == 0 {
			fmt.Println("  all ids present")
		}
		for _, id := range r.Missing[file] {
			fmt.Printf("  - missing: %s\n", id)
		}
	}
}

// usedKeyRe matches i18n.T("some.id", ...).
var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// findUsedKeys returns the first location of every id passed to i18n.T in
// non-test Go files below root.
func findUsedKeys(root string) (map[string]Location, error) {
	keys := make(map[string]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, match := range usedKeyRe.FindAllStringSubmatch(line, -1) {
				if _, seen := keys[match[1]]; !seen {
					keys[match[1]] = Location{Filepath: path, Line: i + 1}
				}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML locale and returns its ids. Nested maps
// are flattened with dots, so "a: {b: x}" and "a.b: x" are the same id.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, val, keys)
	}
}
