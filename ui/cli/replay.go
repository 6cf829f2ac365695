// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/logging"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui"
)

func newReplayCmd() *cobra.Command {
	var output string
	var file string

	cmd := &cobra.Command{
		Use:   "replay [actions...]",
		Short: i18n.T("cli.replay_short"),
		Long: `Apply navigation actions to a fresh state and print the result.

Actions are push, show, dismiss, back and "select <tab>". With --file the
actions are read one per line before the positional ones; '-' reads stdin.
Blank lines and lines starting with '#' are ignored.`,
		Example: `  tabnav replay push push show select 1
  tabnav replay --file script.txt --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			if file != "" {
				fromFile, err := readActionLines(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				lines = append(lines, fromFile...)
			}
			lines = append(lines, joinSelectArgs(args)...)

			actions, err := nav.ParseActions(lines)
			if err != nil {
				return err
			}

			tab, err := ui.InitialTab(appConfig)
			if err != nil {
				return err
			}
			state := nav.NewAppState(tab)
			nav.Apply(state, actions...)
			logging.Debugf("replayed %d actions", len(actions))

			return writeSnapshot(cmd.OutOrStdout(), state.Snapshot(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format (yaml, json)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read actions from a file, one per line")
	return cmd
}

// joinSelectArgs lets "select 1" be typed as two shell words.
func joinSelectArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.EqualFold(strings.TrimSpace(arg), string(nav.ActionSelect)) && i+1 < len(args) {
			arg += " " + args[i+1]
			i++
		}
		out = append(out, arg)
	}
	return out
}

func readActionLines(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open action file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read action file: %w", err)
	}
	return lines, nil
}

func writeSnapshot(w io.Writer, snap nav.Snapshot, format string) error {
	var data []byte
	var err error
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		data, err = yaml.Marshal(snap)
	case "json":
		data, err = json.MarshalIndent(snap, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	_, err = w.Write(data)
	return err
}
