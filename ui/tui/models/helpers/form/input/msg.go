// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import tea "github.com/charmbracelet/bubbletea"

// ValueChangedMsg is sent after an input accepted a change of its value.
type ValueChangedMsg struct {
	ID  string
	Raw string
}

// CurrencyChangedMsg asks every Number input of a form to switch locale.
type CurrencyChangedMsg struct {
	Currency string
}

// clipboardMsg carries the clipboard contents to the input that asked for them.
type clipboardMsg struct {
	id   string
	text string
	err  error
}

func valueChangedCmd(id, raw string) tea.Cmd {
	return func() tea.Msg { return ValueChangedMsg{ID: id, Raw: raw} }
}

func CurrencyChangedCmd(currency string) tea.Cmd {
	return func() tea.Msg { return CurrencyChangedMsg{Currency: currency} }
}
