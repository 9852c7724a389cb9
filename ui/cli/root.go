// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hireu/hireu/internal/config"
	"github.com/hireu/hireu/internal/db"
	"github.com/hireu/hireu/internal/i18n"
	"github.com/hireu/hireu/internal/logging"
	"github.com/hireu/hireu/ui/tui"
	"github.com/hireu/hireu/ui/tui/models/views/posting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// needsStore marks commands that open the draft store before they run.
const needsStore = "hireu/needs-store"

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	// isTerminal decides whether the bare root command starts the TUI.
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	// runTUI is replaced in tests.
	runTUI = tui.Run
)

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, configPath)
	// a missing file is expected on first run
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// empty values in a config file fall back to the defaults
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.Salary.Currency == "" {
		appConfig.Salary.Currency = defaults["salary.currency"].(string)
	}
	if len(appConfig.Salary.Currencies) == 0 {
		appConfig.Salary.Currencies = defaults["salary.currencies"].([]string)
	}

	i18n.Init(appConfig.Language)

	if cmd.Annotations[needsStore] == "" || db.IsInitialized() {
		return nil
	}
	if _, err := db.New(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
		return errors.New(i18n.T("config.error_init_db", err))
	}
	logging.Debugf("opened %s store at %s", appConfig.Database.Type, appConfig.Database.Dsn)
	return nil
}

func closeDefaultServices(cmd *cobra.Command, args []string) error {
	if err := db.CloseDefault(); err != nil {
		return fmt.Errorf("could not close store: %w", err)
	}
	return nil
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
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the hireu root command with every subcommand attached.
// Each call builds a fresh tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hireu",
		Short: "HireU manages salary ranges of job postings.",
		Long: `HireU keeps job posting drafts with their salary ranges.
Salaries are typed as plain digits and shown with the digit grouping
of the posting's currency, e.g. 5,00,000 for INR and 500,000 for USD.

Running without a subcommand launches the interactive editor.`,
		Annotations:   map[string]string{needsStore: "true"},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logging.SetDebug(true)
			}
			return setupDefaultServices(cmd, args)
		},
		PersistentPostRunE: closeDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			s, err := db.DefaultStore()
			if err != nil {
				return err
			}
			opts := posting.Options{
				Store:      s,
				Currencies: appConfig.Salary.Currencies,
				Currency:   appConfig.Salary.Currency,
				Floor:      appConfig.Salary.Minimum,
			}
			return runTUI(opts, fmt.Sprintf("%s: %s", appConfig.Database.Type, appConfig.Database.Dsn))
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./hireu.db", "Database connection string (DSN)")

	cmd.AddCommand(
		newFormatCmd(),
		newEditCmd(),
		newPasteCmd(),
		newPostingsCmd(),
		newVersionCmd(),
	)

	return cmd
}
