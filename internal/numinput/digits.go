// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

import "strings"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// DigitsBefore counts the digits in s[:pos]. pos is clamped to the bounds
// of s.
func DigitsBefore(s string, pos int) int {
	pos = clamp(pos, 0, len(s))
	n := 0
	for i := 0; i < pos; i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}

// CaretForDigits returns the caret position in display that sits right
// after its digits-th digit. Zero digits puts the caret at 0; a count the
// display never reaches puts it at the end.
func CaretForDigits(display string, digits int) int {
	if digits <= 0 {
		return 0
	}
	seen := 0
	for i := 0; i < len(display); i++ {
		if isDigit(display[i]) {
			seen++
			if seen == digits {
				return i + 1
			}
		}
	}
	return len(display)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
