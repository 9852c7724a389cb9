// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// ErrUnknownCurrency is returned when a currency code is not a recognized
// ISO 4217 code.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Locale selects the grouping convention of a display string. It is the
// ISO 4217 code of the currency the amount is entered in and is never part
// of the stored value.
type Locale string

const (
	// INR selects Indian (lakh) grouping.
	INR Locale = "INR"
	// USD is the default locale of a salary field.
	USD Locale = "USD"
)

// Grouping is the rule deciding where separators go.
type Grouping int

const (
	// GroupingInternational groups by three digits throughout: 1,234,567.
	GroupingInternational Grouping = iota
	// GroupingIndian keeps the last three digits together and groups the
	// rest by two: 12,34,567.
	GroupingIndian
)

func (g Grouping) String() string {
	switch g {
	case GroupingIndian:
		return "indian"
	default:
		return "international"
	}
}

// Grouping returns the grouping convention of l. Only INR uses Indian
// grouping.
func (l Locale) Grouping() Grouping {
	if strings.EqualFold(string(l), string(INR)) {
		return GroupingIndian
	}
	return GroupingInternational
}

func (l Locale) String() string { return string(l) }

// ParseLocale validates an ISO 4217 currency code and returns it as a
// Locale in canonical upper case.
func ParseLocale(code string) (Locale, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Locale(unit.String()), nil
}
