// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hireu/hireu/internal/numinput"
)

var (
	// ErrTitleRequired is returned for postings without a title.
	ErrTitleRequired = errors.New("title is required")
	// ErrRangeInverted is returned when the maximum salary is below the minimum.
	ErrRangeInverted = errors.New("maximum salary is below the minimum salary")
)

// Validate checks a posting before it is saved. The minimum salary is
// required and must reach floor; the maximum is optional but may not be
// below the minimum. Errors wrap the sentinel errors of this package and of
// numinput.
func (p Posting) Validate(floor uint64) error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if _, err := numinput.ParseLocale(p.Currency); err != nil {
		return err
	}
	if err := numinput.CheckMin(p.SalaryMin, floor); err != nil {
		return fmt.Errorf("minimum salary: %w", err)
	}
	if p.SalaryMax == "" {
		return nil
	}
	lo, _ := numinput.Value(p.SalaryMin)
	if err := numinput.CheckMin(p.SalaryMax, lo); err != nil {
		if errors.Is(err, numinput.ErrBelowMinimum) {
			return fmt.Errorf("%w: %s < %s", ErrRangeInverted, p.SalaryMax, p.SalaryMin)
		}
		return fmt.Errorf("maximum salary: %w", err)
	}
	return nil
}
