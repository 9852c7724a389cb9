// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

// Splice describes where pasted digits landed in the raw value.
type Splice struct {
	// Start is the digit offset the pasted digits were inserted at.
	Start int
	// Inserted is the number of digits that were inserted.
	Inserted int
}

// ApplyPaste splices the digits of pasted into currentRaw. selStart and
// selEnd are positions in displayBefore, the text shown when the paste
// happened; equal positions mean a plain insertion at the caret. The work
// happens on digits only, so no separator ever reaches the raw value.
//
// The second result is false when the spliced value would exceed MaxDigits;
// currentRaw is returned unchanged in that case.
func ApplyPaste(currentRaw, pasted string, selStart, selEnd int, displayBefore string) (string, bool) {
	raw, _, ok := ApplyPasteSplice(currentRaw, pasted, selStart, selEnd, displayBefore)
	return raw, ok
}

// ApplyPasteSplice is ApplyPaste that also reports where the digits went, so
// a host can put the caret after them.
func ApplyPasteSplice(currentRaw, pasted string, selStart, selEnd int, displayBefore string) (string, Splice, bool) {
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}
	start := min(DigitsBefore(displayBefore, selStart), len(currentRaw))
	end := min(DigitsBefore(displayBefore, selEnd), len(currentRaw))

	digits := StripNonDigits(pasted)
	if len(currentRaw)-(end-start)+len(digits) > MaxDigits {
		return currentRaw, Splice{}, false
	}

	raw := currentRaw[:start] + digits + currentRaw[end:]
	return raw, Splice{Start: start, Inserted: len(digits)}, true
}
