// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEdit_TypingAtEndKeepsCaretAtEnd(t *testing.T) {
	raw, display := "", ""
	for _, d := range "123456789" {
		text := display + string(d)
		res := ApplyEdit(raw, text, len(text), USD)
		require.True(t, res.Accepted)
		assert.Equal(t, len(res.Display), res.Caret, "caret after typing %q", text)
		raw, display = res.Raw, res.Display
	}
	assert.Equal(t, "123456789", raw)
	assert.Equal(t, "123,456,789", display)
}

func TestApplyEdit_CaretStableMidString(t *testing.T) {
	// "1,234,567" with the caret after the 4: type 9 there
	display := Format("1234567", USD)
	caret := strings.Index(display, "4") + 1
	text := display[:caret] + "9" + display[caret:]

	res := ApplyEdit("1234567", text, caret+1, USD)
	require.True(t, res.Accepted)
	assert.Equal(t, "12349567", res.Raw)
	assert.Equal(t, "12,349,567", res.Display)
	assert.Equal(t, "12,349", res.Display[:res.Caret])
}

func TestApplyEdit_BackspaceOverSeparatorRegion(t *testing.T) {
	// "1,234" with the 1 deleted: "," left in front
	res := ApplyEdit("1234", ",234", 0, USD)
	require.True(t, res.Accepted)
	assert.Equal(t, "234", res.Raw)
	assert.Equal(t, "234", res.Display)
	assert.Equal(t, 0, res.Caret)

	// "12,34,567" delete the 3 in INR
	res = ApplyEdit("1234567", "12,4,567", 3, INR)
	require.True(t, res.Accepted)
	assert.Equal(t, "124567", res.Raw)
	assert.Equal(t, "1,24,567", res.Display)
	assert.Equal(t, "1,2", res.Display[:res.Caret])
}

func TestApplyEdit_StripsStrayCharacters(t *testing.T) {
	res := ApplyEdit("12", "12a", 3, USD)
	require.True(t, res.Accepted)
	assert.Equal(t, "12", res.Raw)
	assert.Equal(t, 2, res.Caret)
}

func TestApplyEdit_OverflowRejected(t *testing.T) {
	raw := strings.Repeat("9", MaxDigits)
	display := Format(raw, USD)
	res := ApplyEdit(raw, display+"1", len(display)+1, USD)
	assert.False(t, res.Accepted)
	assert.Equal(t, raw, res.Raw)
	assert.Equal(t, display, res.Display)
}

func TestApplyEdit_LeadingZerosDropped(t *testing.T) {
	res := ApplyEdit("5", "05", 1, USD)
	require.True(t, res.Accepted)
	assert.Equal(t, "5", res.Raw)
	assert.Equal(t, 0, res.Caret)

	res = ApplyEdit("", "0", 1, USD)
	require.True(t, res.Accepted)
	assert.Equal(t, "0", res.Raw)
	assert.Equal(t, 1, res.Caret)
}

func TestApplyEdit_ClearField(t *testing.T) {
	res := ApplyEdit("1234", "", 0, INR)
	require.True(t, res.Accepted)
	assert.Equal(t, "", res.Raw)
	assert.Equal(t, "", res.Display)
	assert.Equal(t, 0, res.Caret)
}

func TestApplyEdit_CaretOutOfRangeIsClamped(t *testing.T) {
	res := ApplyEdit("", "123", 99, USD)
	assert.Equal(t, 3, res.Caret)
	res = ApplyEdit("", "123", -4, USD)
	assert.Equal(t, 0, res.Caret)
}

func TestRelocale_KeepsRawAndDigitPosition(t *testing.T) {
	raw := "1234567"
	usd := Format(raw, USD)
	require.Equal(t, "1,234,567", usd)

	// caret after the 5th digit: "1,234,5|67"
	display, caret := Relocale(raw, usd, 7, INR)
	assert.Equal(t, "12,34,567", display)
	assert.Equal(t, "12,34,5", display[:caret])
	assert.Equal(t, raw, StripNonDigits(display))
}

func TestApplyPaste(t *testing.T) {
	cases := []struct {
		name         string
		raw, pasted  string
		start, end   int
		want         string
		wantAccepted bool
	}{
		{"replace whole field", "500000", "1,234", 0, 7, "1234", true},
		{"insert at caret", "500000", "12", 3, 3, "50012000", true},
		{"insert at start", "500", "9", 0, 0, "9500", true},
		{"reversed selection", "500000", "7", 7, 4, "5007", true},
		{"replace middle", "123456", "$9", 2, 5, "12956", true},
		{"nothing to paste", "500", "abc", 1, 1, "500", true},
		{"overflow", strings.Repeat("1", 14), "23", 0, 0, strings.Repeat("1", 14), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			display := Format(c.raw, USD)
			got, ok := ApplyPaste(c.raw, c.pasted, c.start, c.end, display)
			assert.Equal(t, c.wantAccepted, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestApplyPasteSplice_ReportsInsertion(t *testing.T) {
	raw, sp, ok := ApplyPasteSplice("1000", "25", 2, 2, "1,000")
	require.True(t, ok)
	assert.Equal(t, "125000", raw)
	assert.Equal(t, Splice{Start: 1, Inserted: 2}, sp)
}

func TestCaretForDigits(t *testing.T) {
	assert.Equal(t, 0, CaretForDigits("1,234", 0))
	assert.Equal(t, 1, CaretForDigits("1,234", 1))
	assert.Equal(t, 3, CaretForDigits("1,234", 2))
	assert.Equal(t, 5, CaretForDigits("1,234", 9))
	assert.Equal(t, 0, CaretForDigits("", 3))
}

func TestAllowKey(t *testing.T) {
	for _, k := range []string{"0", "9", "backspace", "delete", "left", "home", "ctrl+v", "ctrl+z", "tab"} {
		if !AllowKey(k) {
			t.Fatalf("expected %q to be allowed", k)
		}
	}
	for _, k := range []string{"a", ",", " ", "-", "alt+x", "ctrl+p", "ab"} {
		if AllowKey(k) {
			t.Fatalf("expected %q to be suppressed", k)
		}
	}
}

func TestCheckMin(t *testing.T) {
	if err := CheckMin("50000", 10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckMin("5000", 10000); !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
	if err := CheckMin("", 0); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := Value("12a"); !errors.Is(err, ErrInvalidRaw) {
		t.Fatalf("expected ErrInvalidRaw, got %v", err)
	}
}
