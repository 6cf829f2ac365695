// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// configuration bootstrap run before every subcommand.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/tabnav/internal/config"
	"github.com/toeirei/tabnav/internal/i18n"
	"github.com/toeirei/tabnav/internal/logging"
	"github.com/toeirei/tabnav/ui"
	"github.com/toeirei/tabnav/ui/tui"
	"golang.org/x/term"
)

var cfgFile string
var verbose bool

var appConfig config.Config

// swapped by tests
var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runTUI     = tui.Run
)

// loadDotEnv applies a .env file from the working directory. Variables that
// are already set keep their value.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warnf("could not load .env file: %v", err)
	}
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	loadDotEnv()

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd.Flags(), config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected on first run. Only defaults are
	// persisted; flag and env overrides apply to this run alone.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := writeDefaultConfig(); writeErr != nil {
			// the app runs fine on defaults
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = config.Defaults()["language"].(string)
	}

	return ui.Initialize(appConfig, verbose)
}

func writeDefaultConfig() error {
	defaults, err := config.FromDefaults[config.Config](config.Defaults())
	if err != nil {
		return err
	}
	return config.WriteConfigFile(&defaults, false)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main package calls this and handles
// the process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. Tests call it
// to get isolated command trees.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "tabnav",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runRoot,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("lang", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().Int("tab", 0, "Tab selected at start (0 or 1)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file while the TUI runs")

	cmd.AddCommand(
		newReplayCmd(),
		newVersionCmd(),
	)

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return errors.New(i18n.T("cli.error_not_terminal"))
	}

	tab, err := ui.InitialTab(appConfig)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to the configured file.
	closeLog, err := logging.OpenFile(appConfig.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
		logging.SetOutput(os.Stderr)
	}()

	return runTUI(tui.Options{InitialTab: tab})
}
