// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hireu/hireu/internal/logging"
	"github.com/hireu/hireu/internal/numinput"
	"github.com/spf13/cobra"
)

func currencyFlag(cmd *cobra.Command) {
	cmd.Flags().String("currency", "", "Currency code selecting the digit grouping (default salary.currency)")
}

// localeFromFlags resolves --currency, falling back to the configured
// currency.
func localeFromFlags(cmd *cobra.Command) (numinput.Locale, error) {
	code, err := cmd.Flags().GetString("currency")
	if err != nil {
		return "", err
	}
	if code == "" {
		code = appConfig.Salary.Currency
	}
	loc, err := numinput.ParseLocale(code)
	if err != nil {
		return "", fmt.Errorf("invalid --currency: %w", err)
	}
	return loc, nil
}

// checkRaw accepts digit strings of at most MaxDigits and the empty string.
func checkRaw(raw string) error {
	if _, err := numinput.Value(raw); err != nil && !errors.Is(err, numinput.ErrEmpty) {
		return err
	}
	return nil
}

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <digits>",
		Short: "Print a raw salary with digit grouping",
		Example: `  hireu format 1234567 --currency INR
  12,34,567`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := localeFromFlags(cmd)
			if err != nil {
				return err
			}
			raw := args[0]
			if err := checkRaw(raw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), numinput.Format(raw, loc))
			return nil
		},
	}
	currencyFlag(cmd)
	return cmd
}

func newEditCmd() *cobra.Command {
	var (
		raw, text string
		caret     int
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply one edit event and print the result as JSON",
		Long: `Edit runs a single edit event of a salary field: --raw is the value
before the keystroke, --text is what the field holds afterwards and
--caret the caret position in it. A rejected edit still exits with
status 0 and reports "accepted": false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := localeFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := checkRaw(raw); err != nil {
				return err
			}
			res := numinput.ApplyEdit(raw, text, caret, loc)
			logging.Debugf("edit %q -> %q accepted=%t", text, res.Display, res.Accepted)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
		},
	}
	cmd.Flags().StringVar(&raw, "raw", "", "Raw value before the edit")
	cmd.Flags().StringVar(&text, "text", "", "Field text after the edit")
	cmd.Flags().IntVar(&caret, "caret", 0, "Caret position in --text")
	currencyFlag(cmd)
	return cmd
}

func newPasteCmd() *cobra.Command {
	var (
		raw, display, text string
		start, end         int
	)
	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Splice pasted text into a raw salary and print the new raw value",
		Long: `Paste inserts the digits of --text into --raw, replacing the selection
--start..--end given in positions of --display. --display defaults to
--raw formatted for --currency. Pastes that would overflow leave the
value unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := localeFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := checkRaw(raw); err != nil {
				return err
			}
			if !cmd.Flags().Changed("display") {
				display = numinput.Format(raw, loc)
			}
			if !cmd.Flags().Changed("start") {
				start = len(display)
			}
			if !cmd.Flags().Changed("end") {
				end = start
			}
			out, ok := numinput.ApplyPaste(raw, text, start, end, display)
			if ok {
				out = numinput.Normalize(out)
			} else {
				logging.Warnf("paste rejected: more than %d digits", numinput.MaxDigits)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&raw, "raw", "", "Raw value before the paste")
	cmd.Flags().StringVar(&display, "display", "", "Text shown when the paste happened")
	cmd.Flags().StringVar(&text, "text", "", "Pasted text")
	cmd.Flags().IntVar(&start, "start", 0, "Selection start in --display (default end of --display)")
	cmd.Flags().IntVar(&end, "end", 0, "Selection end in --display (default --start)")
	currencyFlag(cmd)
	return cmd
}
