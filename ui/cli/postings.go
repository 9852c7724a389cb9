// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hireu/hireu/internal/db"
	"github.com/hireu/hireu/internal/i18n"
	"github.com/hireu/hireu/internal/model"
	"github.com/hireu/hireu/internal/numinput"
	"github.com/spf13/cobra"
)

func newPostingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postings",
		Short: "Manage posting drafts",
	}
	cmd.AddCommand(
		newPostingsListCmd(),
		newPostingsAddCmd(),
		newPostingsDeleteCmd(),
		newPostingsExportCmd(),
		newPostingsImportCmd(),
	)
	return cmd
}

// storeCmd marks c as needing the draft store.
func storeCmd(c *cobra.Command) *cobra.Command {
	if c.Annotations == nil {
		c.Annotations = map[string]string{}
	}
	c.Annotations[needsStore] = "true"
	return c
}

// salaryArg accepts a salary typed with or without grouping separators and
// returns its raw digits.
func salaryArg(name, in string) (string, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(in), string(numinput.Separator), "")
	if err := checkRaw(raw); err != nil {
		return "", fmt.Errorf("invalid --%s: %w", name, err)
	}
	return numinput.Normalize(raw), nil
}

func newPostingsListCmd() *cobra.Command {
	var opts db.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posting drafts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := db.DefaultStore()
			if err != nil {
				return err
			}
			opts.Currency = strings.ToUpper(opts.Currency)
			postings, err := s.ListPostings(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("could not list postings: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(postings) == 0 {
				fmt.Fprintln(out, i18n.T("posting.none"))
				return nil
			}
			for _, p := range postings {
				fmt.Fprintln(out, p.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Currency, "currency", "", "Only list postings in this currency")
	cmd.Flags().StringVar(&opts.Query, "search", "", "Only list postings whose title contains these words")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of postings (0 lists all)")
	return storeCmd(cmd)
}

func newPostingsAddCmd() *cobra.Command {
	var title, currency, minSalary, maxSalary string
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a posting draft",
		Example: `  hireu postings add --title "Backend engineer" --currency INR --min 5,00,000 --max 1200000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := db.DefaultStore()
			if err != nil {
				return err
			}
			if currency == "" {
				currency = appConfig.Salary.Currency
			}
			p := model.Posting{
				Title:    strings.TrimSpace(title),
				Currency: strings.ToUpper(currency),
			}
			if p.SalaryMin, err = salaryArg("min", minSalary); err != nil {
				return err
			}
			if p.SalaryMax, err = salaryArg("max", maxSalary); err != nil {
				return err
			}
			if err := p.Validate(appConfig.Salary.Minimum); err != nil {
				return fmt.Errorf("invalid posting: %w", err)
			}
			if err := s.SavePosting(cmd.Context(), &p); err != nil {
				return fmt.Errorf("could not save posting: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.saved", p.String()))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Posting title")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (default salary.currency)")
	cmd.Flags().StringVar(&minSalary, "min", "", "Minimum salary")
	cmd.Flags().StringVar(&maxSalary, "max", "", "Maximum salary (optional)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("min")
	return storeCmd(cmd)
}

func newPostingsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a posting draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid posting id %q: %w", args[0], err)
			}
			s, err := db.DefaultStore()
			if err != nil {
				return err
			}
			if err := s.DeletePosting(cmd.Context(), id); err != nil {
				return fmt.Errorf("could not delete posting %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.deleted", id))
			return nil
		},
	}
	return storeCmd(cmd)
}

func newPostingsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write all posting drafts to a zstd-compressed archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := db.DefaultStore()
			if err != nil {
				return err
			}
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("could not create export file: %w", err)
			}
			n, err := db.ExportPostings(cmd.Context(), s, f)
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("could not close export file: %w", closeErr)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.exported", n, args[0]))
			return nil
		},
	}
	return storeCmd(cmd)
}

func newPostingsImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add the posting drafts of an archive written by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := db.DefaultStore()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open import file: %w", err)
			}
			defer func() { _ = f.Close() }()
			n, err := db.ImportPostings(cmd.Context(), s, f)
			if err != nil {
				return fmt.Errorf("could not import %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.imported", n, args[0]))
			return nil
		},
	}
	return storeCmd(cmd)
}
