// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the HireU configuration from defaults, config files,
// HIREU_* environment variables and command flags, and writes it back as
// YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Database Database `mapstructure:"database" yaml:"database"`
	Language string   `mapstructure:"language" yaml:"language"`
	Salary   Salary   `mapstructure:"salary" yaml:"salary"`
}

// Database selects the draft store backend.
type Database struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// Salary configures the salary fields of the posting form.
type Salary struct {
	// Currency is preselected in new postings.
	Currency string `mapstructure:"currency" yaml:"currency"`
	// Currencies are offered by the currency selector.
	Currencies []string `mapstructure:"currencies" yaml:"currencies"`
	// Minimum is the salary floor checked when a posting is submitted.
	Minimum uint64 `mapstructure:"minimum" yaml:"minimum"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":     "sqlite",
		"database.dsn":      "./hireu.db",
		"language":          "en",
		"salary.currency":   "USD",
		"salary.currencies": []string{"USD", "INR", "EUR", "GBP"},
		"salary.minimum":    0,
	}
}

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "HireU")
		default:
			configDir = "/etc/hireu"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "hireu")
	}

	return filepath.Join(configDir, "hireu.yaml"), nil
}

// LoadConfig resolves a T from, in rising precedence: defaults, the system
// config, the user config, ./hireu.yaml, an explicit file, HIREU_* variables
// and the flags of cmd. A missing config file is reported as
// viper.ConfigFileNotFoundError together with the resolved value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("hireu")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("hireu")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// the DSN may carry database credentials
	return os.WriteFile(path, data, 0o600)
}
