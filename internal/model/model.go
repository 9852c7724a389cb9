// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the data structures shared by the store, the CLI and
// the TUI.
package model // import "github.com/hireu/hireu/internal/model"

import (
	"fmt"
	"time"

	"github.com/hireu/hireu/internal/numinput"
)

// Posting is a job posting draft with its salary range. Salary values are
// raw digit strings, the canonical form of a salary field.
type Posting struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Currency  string    `json:"currency"`
	SalaryMin string    `json:"salary_min"`
	SalaryMax string    `json:"salary_max"`
	CreatedAt time.Time `json:"created_at"`
}

// Locale returns the grouping locale of the posting's currency.
func (p Posting) Locale() numinput.Locale {
	return numinput.Locale(p.Currency)
}

// Range renders the salary range with the posting's grouping, e.g.
// "INR 5,00,000 - 12,00,000". Without a maximum it reads "INR 5,00,000+".
func (p Posting) Range() string {
	loc := p.Locale()
	if p.SalaryMax == "" {
		return fmt.Sprintf("%s %s+", p.Currency, numinput.Format(p.SalaryMin, loc))
	}
	return fmt.Sprintf("%s %s - %s", p.Currency, numinput.Format(p.SalaryMin, loc), numinput.Format(p.SalaryMax, loc))
}

// String returns a one-line summary.
func (p Posting) String() string {
	return fmt.Sprintf("#%d %s (%s)", p.ID, p.Title, p.Range())
}
