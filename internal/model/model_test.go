// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"testing"

	"github.com/hireu/hireu/internal/numinput"
)

func TestPosting_RangeUsesCurrencyGrouping(t *testing.T) {
	p := Posting{ID: 3, Title: "Backend Engineer", Currency: "INR", SalaryMin: "500000", SalaryMax: "1200000"}
	if got, want := p.Range(), "INR 5,00,000 - 12,00,000"; got != want {
		t.Fatalf("Range() = %q, want %q", got, want)
	}
	if got, want := p.String(), "#3 Backend Engineer (INR 5,00,000 - 12,00,000)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	p.Currency = "USD"
	if got, want := p.Range(), "USD 500,000 - 1,200,000"; got != want {
		t.Fatalf("Range() = %q, want %q", got, want)
	}
}

func TestPosting_RangeWithoutMaximum(t *testing.T) {
	p := Posting{Currency: "USD", SalaryMin: "90000"}
	if got, want := p.Range(), "USD 90,000+"; got != want {
		t.Fatalf("Range() = %q, want %q", got, want)
	}
}

func TestPosting_Validate(t *testing.T) {
	valid := Posting{Title: "SRE", Currency: "INR", SalaryMin: "500000", SalaryMax: "1200000"}
	if err := valid.Validate(100000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		edit  func(p *Posting)
		floor uint64
		want  error
	}{
		{"blank title", func(p *Posting) { p.Title = "  " }, 0, ErrTitleRequired},
		{"unknown currency", func(p *Posting) { p.Currency = "ZZZ" }, 0, numinput.ErrUnknownCurrency},
		{"missing minimum", func(p *Posting) { p.SalaryMin = "" }, 0, numinput.ErrEmpty},
		{"below floor", func(p *Posting) {}, 600000, numinput.ErrBelowMinimum},
		{"inverted range", func(p *Posting) { p.SalaryMax = "400000" }, 0, ErrRangeInverted},
		{"formatted maximum", func(p *Posting) { p.SalaryMax = "12,00,000" }, 0, numinput.ErrInvalidRaw},
	}
	for _, c := range cases {
		p := valid
		c.edit(&p)
		if err := p.Validate(c.floor); !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}

	open := valid
	open.SalaryMax = ""
	if err := open.Validate(0); err != nil {
		t.Fatalf("maximum is optional: %v", err)
	}
}
