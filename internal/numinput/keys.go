// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package numinput

// passKeys are the key names a numeric field never suppresses. Names follow
// the terminal key notation used by bubbletea's KeyMsg.String().
var passKeys = map[string]struct{}{
	// navigation
	"left": {}, "right": {}, "up": {}, "down": {},
	"home": {}, "end": {}, "tab": {}, "shift+tab": {},
	"enter": {}, "esc": {},
	"ctrl+a": {}, "ctrl+e": {}, "ctrl+b": {}, "ctrl+f": {},
	"alt+left": {}, "alt+right": {}, "ctrl+left": {}, "ctrl+right": {},
	// deletion
	"backspace": {}, "delete": {},
	"ctrl+h": {}, "ctrl+d": {}, "ctrl+w": {}, "ctrl+k": {}, "ctrl+u": {},
	"alt+backspace": {}, "alt+delete": {}, "alt+d": {},
	// clipboard and undo
	"ctrl+c": {}, "ctrl+v": {}, "ctrl+x": {}, "ctrl+z": {}, "ctrl+y": {},
}

// AllowKey reports whether a key press may reach a numeric field. It is
// advisory: it lets navigation, deletion and clipboard keys through together
// with single digits and drops everything else. ApplyEdit strips non-digits
// regardless of what this returns.
func AllowKey(key string) bool {
	if len(key) == 1 {
		return isDigit(key[0])
	}
	_, ok := passKeys[key]
	return ok
}
