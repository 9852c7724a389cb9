// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

// EditResult is the outcome of one edit event.
type EditResult struct {
	// Raw is the raw value to emit. On rejection it is the previous value.
	Raw string `json:"raw"`
	// Display is Format(Raw, locale).
	Display string `json:"display"`
	// Caret is the position the host should restore once Display is shown.
	Caret int `json:"caret"`
	// Accepted is false when the edit was dropped and nothing should be
	// emitted upward.
	Accepted bool `json:"accepted"`
}

// ApplyEdit turns the text of the field after a keystroke into a new raw
// value, display string and caret. newText is whatever the control holds
// now (separators and stray characters included) and caret is the caret
// position in it.
//
// The digit left of the caret before reformatting is the digit left of the
// caret afterwards. Edits that would grow the raw value beyond MaxDigits are
// rejected and leave currentRaw untouched.
func ApplyEdit(currentRaw, newText string, caret int, loc Locale) EditResult {
	digitsBeforeCaret := DigitsBefore(newText, caret)

	candidate := StripNonDigits(newText)
	if len(candidate) > MaxDigits {
		display := Format(currentRaw, loc)
		return EditResult{
			Raw:     currentRaw,
			Display: display,
			Caret:   len(display),
		}
	}

	display := Format(candidate, loc)
	raw := StripNonDigits(display)

	// leading zeros vanish in Format; they all sit left of the caret or
	// straddle it, so shift the digit count by what was dropped in front
	dropped := len(candidate) - len(raw)
	digitsBeforeCaret -= min(dropped, digitsBeforeCaret)

	return EditResult{
		Raw:      raw,
		Display:  display,
		Caret:    CaretForDigits(display, digitsBeforeCaret),
		Accepted: true,
	}
}

// Relocale reformats raw for a new locale without touching it. caret is the
// position in the old display; the returned caret sits after the same digit
// in the new display.
func Relocale(raw, oldDisplay string, caret int, loc Locale) (string, int) {
	display := Format(raw, loc)
	return display, CaretForDigits(display, DigitsBefore(oldDisplay, caret))
}
