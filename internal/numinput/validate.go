// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmpty is returned when a value is required but the raw value is empty.
	ErrEmpty = errors.New("value is empty")
	// ErrBelowMinimum is returned by CheckMin.
	ErrBelowMinimum = errors.New("value is below the minimum")
	// ErrInvalidRaw is returned for raw values that are not digit strings of
	// at most MaxDigits.
	ErrInvalidRaw = errors.New("invalid raw value")
)

// Value returns the integer a raw value stands for.
func Value(raw string) (uint64, error) {
	if raw == "" {
		return 0, ErrEmpty
	}
	if len(raw) > MaxDigits || StripNonDigits(raw) != raw {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRaw, raw)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRaw, err)
	}
	return n, nil
}

// CheckMin validates raw against a lower bound. Call it on blur or submit,
// never while the user is typing.
func CheckMin(raw string, minimum uint64) error {
	v, err := Value(raw)
	if err != nil {
		return err
	}
	if v < minimum {
		return fmt.Errorf("%w: %d < %d", ErrBelowMinimum, v, minimum)
	}
	return nil
}
