// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/hireu/hireu/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	var nf viper.ConfigFileNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Database.Type != "sqlite" || got.Salary.Currency != "USD" || got.Language != "en" {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if len(got.Salary.Currencies) != 4 {
		t.Fatalf("expected default currency list, got %v", got.Salary.Currencies)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: de\nsalary:\n  currency: INR\n  minimum: 300000\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Salary.Currency != "INR" || got.Salary.Minimum != 300000 {
		t.Fatalf("unexpected salary section: %+v", got.Salary)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	t.Setenv("HIREU_SALARY_CURRENCY", "EUR")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if got.Salary.Currency != "EUR" {
		t.Fatalf("expected env override EUR, got %q", got.Salary.Currency)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./hireu.db"
	c.Language = "en"
	c.Salary.Currency = "INR"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("reload failed: %v\n%s", err, data)
	}
	if got.Salary.Currency != "INR" {
		t.Fatalf("expected INR after reload, got %q", got.Salary.Currency)
	}
}
