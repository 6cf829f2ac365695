// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/tabnav/buildvars"
	"github.com/toeirei/tabnav/internal/i18n"
)

const modulePath = "github.com/toeirei/tabnav"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tabnav %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
			return nil
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite += " (" + c + ")"
	}
	if d != "" {
		composite += " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date. Link-time values win; otherwise the module build info is consulted.
// If info is nil it is read from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	versionOut = buildvars.VersionOrDefault("dev")
	commitOut = buildvars.Commit
	dateOut = buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info == nil {
		if commitOut == "" {
			commitOut = "dev"
		}
		return versionOut, commitOut, dateOut
	}

	if versionOut == "dev" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			versionOut = info.Main.Version
		} else {
			// Some build paths only record our version as a dependency.
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					versionOut = dep.Version
					break
				}
			}
		}
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commitOut == "" && s.Value != "" {
				commitOut = shortRevision(s.Value)
			}
		case "vcs.time":
			if dateOut == "" {
				dateOut = s.Value
			}
		}
	}

	if commitOut == "" {
		commitOut = "dev"
	}
	// Fall back to the commit when nothing better identifies the build.
	if versionOut == "dev" && commitOut != "dev" {
		versionOut = commitOut
	}
	return versionOut, commitOut, dateOut
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
