// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

import (
	"strconv"
	"strings"
)

// MaxDigits is the hard ceiling on the length of a raw value.
const MaxDigits = 15

// Separator is the group separator written into display strings.
const Separator = ','

// Format renders a raw digit string with the grouping of loc. It returns ""
// for an empty input and for anything that does not parse as a non-negative
// integer. Leading zeros do not survive the integer parse.
func Format(raw string, loc Locale) string {
	if raw == "" {
		return ""
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return ""
	}
	return group(strconv.FormatUint(n, 10), loc.Grouping())
}

// group inserts separators into a plain run of digits.
func group(digits string, g Grouping) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	size := 3
	if g == GroupingIndian {
		size = 2
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/2)

	lead := len(head) % size
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += size {
		if b.Len() > 0 {
			b.WriteByte(Separator)
		}
		b.WriteString(head[i : i+size])
	}
	b.WriteByte(Separator)
	b.WriteString(tail)

	return b.String()
}

// Normalize returns the canonical form of a raw value: the digits Format
// would display for it. Leading zeros are dropped and "" stays "".
func Normalize(raw string) string {
	return StripNonDigits(Format(raw, USD))
}
