// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads tabnav settings from defaults, config files,
// TABNAV_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the persisted application configuration.
type Config struct {
	Language   string    `mapstructure:"language" yaml:"language"`
	InitialTab int       `mapstructure:"initial_tab" yaml:"initial_tab"`
	Log        LogConfig `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults are used when no file, env var or flag sets a value.
func Defaults() map[string]any {
	return map[string]any{
		"language":    "en",
		"initial_tab": 0,
		"log.level":   "info",
		"log.file":    "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "tabnav")
		default:
			configDir = "/etc/tabnav"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "tabnav")
	}

	return filepath.Join(configDir, "tabnav.yaml"), nil
}

// LoadConfig resolves T from, in rising precedence: defaults, the config
// file, environment and flags. A missing config file is reported as
// viper.ConfigFileNotFoundError together with the resolved defaults.
func LoadConfig[T any](flags *pflag.FlagSet, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("tabnav")
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("tabnav")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return c, err
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("error reading config: %w", readErr)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("error decoding config: %w", err)
	}
	return c, readErr
}

// FromDefaults decodes defaults into T. Files, environment and flags are not
// consulted, so the result is safe to persist as a first-run config.
func FromDefaults[T any](defaults map[string]any) (T, error) {
	var c T
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("error decoding defaults: %w", err)
	}
	return c, nil
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"lang":      "language",
	"tab":       "initial_tab",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
