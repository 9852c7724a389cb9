// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hireu/hireu/internal/logging"
	"github.com/hireu/hireu/internal/numinput"
	"github.com/hireu/hireu/ui/tui/models/helpers/form"
)

const undoDepth = 32

// Number is a form input for amounts. The textinput only ever holds the
// grouped display string; the raw digits live in raw and every edit is run
// through numinput so the caret stays on the same digit.
type Number struct {
	ID          string
	Label       string
	Placeholder string
	KeyMap      NumberKeyMap

	input    textinput.Model
	raw      string
	locale   numinput.Locale
	selected bool
	history  []string
	focused  bool
}

type NumberKeyMap struct {
	Next      key.Binding
	SelectAll key.Binding
	Paste     key.Binding
	Cut       key.Binding
	Undo      key.Binding
}

func (k NumberKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Paste}
}

func (k NumberKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.SelectAll}, {k.Paste, k.Cut, k.Undo}}
}

func NewNumber(id, label string, loc numinput.Locale) *Number {
	in := textinput.New()
	// ctrl+a is select all here and ctrl+v is handled before the textinput
	in.KeyMap.LineStart = key.NewBinding(key.WithKeys("home"))
	in.KeyMap.Paste = key.NewBinding(key.WithDisabled())

	n := &Number{
		ID:    id,
		Label: label,
		KeyMap: NumberKeyMap{
			Next:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
			SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
			Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
			Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
			Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		},
		input: in,
	}
	n.setLocale(loc)
	return n
}

// Raw returns the digits without grouping.
func (n *Number) Raw() string { return n.raw }

// Display returns the text shown in the field.
func (n *Number) Display() string { return n.input.Value() }

// Caret returns the caret position in Display.
func (n *Number) Caret() int { return n.input.Position() }

func (n *Number) Locale() numinput.Locale { return n.locale }

// Selected reports whether the whole field is selected.
func (n *Number) Selected() bool { return n.selected }

// SetLocale regroups the current value for loc. The raw value is untouched
// and the caret keeps its digit.
func (n *Number) SetLocale(loc numinput.Locale) {
	display, caret := numinput.Relocale(n.raw, n.input.Value(), n.input.Position(), loc)
	n.setLocale(loc)
	n.input.SetValue(display)
	n.input.SetCursor(caret)
}

func (n *Number) setLocale(loc numinput.Locale) {
	n.locale = loc
	n.input.Prompt = loc.String() + " "
}

func (n *Number) Focus() (tea.Cmd, help.KeyMap) {
	n.focused = true
	return n.input.Focus(), n.KeyMap
}

func (n *Number) Blur() {
	n.focused = false
	n.selected = false
	n.input.Blur()
}

func (n *Number) Init() tea.Cmd { return nil }

func (n *Number) Reset() {
	n.raw = ""
	n.selected = false
	n.history = nil
	n.input.SetValue("")
	n.input.SetCursor(0)
}

// Get returns the raw digit string.
func (n *Number) Get() any { return n.raw }

// Set accepts a raw digit string or an unsigned integer. Values that are
// not digits or exceed numinput.MaxDigits are ignored.
func (n *Number) Set(value any) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case uint:
		s = strconv.FormatUint(uint64(v), 10)
	case uint32:
		s = strconv.FormatUint(uint64(v), 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	default:
		return
	}
	if numinput.StripNonDigits(s) != s {
		return
	}
	res := numinput.ApplyEdit(n.raw, s, len(s), n.locale)
	if !res.Accepted {
		return
	}
	n.raw = res.Raw
	n.selected = false
	n.input.SetValue(res.Display)
	n.input.SetCursor(res.Caret)
}

func (n *Number) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case CurrencyChangedMsg:
		loc, err := numinput.ParseLocale(msg.Currency)
		if err != nil {
			logging.Warnf("number input %s: %v", n.ID, err)
			return nil, form.ActionNone
		}
		n.SetLocale(loc)
		return nil, form.ActionNone
	case clipboardMsg:
		if msg.id != n.ID {
			return nil, form.ActionNone
		}
		if msg.err != nil {
			logging.Warnf("read clipboard: %v", msg.err)
			return nil, form.ActionNone
		}
		return n.paste(msg.text), form.ActionNone
	case tea.KeyMsg:
		if !n.focused {
			return nil, form.ActionNone
		}
		return n.handleKey(msg)
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd, form.ActionNone
}

func (n *Number) handleKey(msg tea.KeyMsg) (tea.Cmd, form.Action) {
	// bracketed paste arrives as a single runes message
	if msg.Paste {
		return n.paste(string(msg.Runes)), form.ActionNone
	}
	// fast typing and unbracketed paste group runes into one message
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		if numinput.StripNonDigits(string(msg.Runes)) == "" {
			return nil, form.ActionNone
		}
		return n.paste(string(msg.Runes)), form.ActionNone
	}

	switch {
	case key.Matches(msg, n.KeyMap.Next):
		return nil, form.ActionNext
	case key.Matches(msg, n.KeyMap.Paste):
		return n.readClipboard(), form.ActionNone
	case key.Matches(msg, n.KeyMap.SelectAll):
		n.selected = n.raw != ""
		n.input.CursorEnd()
		return nil, form.ActionNone
	case key.Matches(msg, n.KeyMap.Undo):
		return n.undo(), form.ActionNone
	case key.Matches(msg, n.KeyMap.Cut):
		return n.cut(), form.ActionNone
	}

	if !numinput.AllowKey(msg.String()) {
		return nil, form.ActionNone
	}

	if n.selected {
		n.selected = false
		switch {
		case msg.Type == tea.KeyRunes:
			return n.replaceAll(string(msg.Runes)), form.ActionNone
		case isDeletion(msg):
			return n.replaceAll(""), form.ActionNone
		}
	}

	prevDisplay, prevCaret := n.input.Value(), n.input.Position()
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)

	// navigation: keep the caret where the textinput put it
	if n.input.Value() == prevDisplay {
		return cmd, form.ActionNone
	}

	res := numinput.ApplyEdit(n.raw, n.input.Value(), n.input.Position(), n.locale)
	if !res.Accepted {
		n.input.SetValue(prevDisplay)
		n.input.SetCursor(prevCaret)
		return cmd, form.ActionNone
	}
	return tea.Batch(cmd, n.commit(res)), form.ActionNone
}

// paste splices text at the caret, or over the whole field when selected,
// and leaves the caret after the pasted digits.
func (n *Number) paste(text string) tea.Cmd {
	display := n.input.Value()
	start, end := n.input.Position(), n.input.Position()
	if n.selected {
		start, end = 0, len(display)
		n.selected = false
	}

	raw, sp, ok := numinput.ApplyPasteSplice(n.raw, text, start, end, display)
	if !ok {
		logging.Debugf("number input %s: paste rejected, more than %d digits", n.ID, numinput.MaxDigits)
		return nil
	}
	res := numinput.ApplyEdit(n.raw, raw, sp.Start+sp.Inserted, n.locale)
	if !res.Accepted {
		return nil
	}
	return n.commit(res)
}

func (n *Number) replaceAll(text string) tea.Cmd {
	digits := numinput.StripNonDigits(text)
	res := numinput.ApplyEdit(n.raw, digits, len(digits), n.locale)
	if !res.Accepted {
		return nil
	}
	return n.commit(res)
}

func (n *Number) cut() tea.Cmd {
	if !n.selected {
		return nil
	}
	display := n.input.Value()
	n.selected = false
	return tea.Batch(
		func() tea.Msg {
			if err := clipboard.WriteAll(display); err != nil {
				logging.Warnf("write clipboard: %v", err)
			}
			return nil
		},
		n.replaceAll(""),
	)
}

func (n *Number) undo() tea.Cmd {
	if len(n.history) == 0 {
		return nil
	}
	prev := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.selected = false
	n.raw = prev
	display := numinput.Format(prev, n.locale)
	n.input.SetValue(display)
	n.input.SetCursor(len(display))
	return valueChangedCmd(n.ID, prev)
}

func (n *Number) commit(res numinput.EditResult) tea.Cmd {
	changed := res.Raw != n.raw
	if changed {
		n.history = append(n.history, n.raw)
		if len(n.history) > undoDepth {
			n.history = n.history[1:]
		}
	}
	n.raw = res.Raw
	n.input.SetValue(res.Display)
	n.input.SetCursor(res.Caret)
	if changed {
		return valueChangedCmd(n.ID, res.Raw)
	}
	return nil
}

func (n *Number) readClipboard() tea.Cmd {
	id := n.ID
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return clipboardMsg{id: id, text: text, err: err}
	}
}

func isDeletion(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "backspace", "delete", "ctrl+h", "ctrl+d", "ctrl+w", "ctrl+k", "ctrl+u",
		"alt+backspace", "alt+delete", "alt+d":
		return true
	}
	return false
}

func (n *Number) View(width int) string {
	label := labelStyle.Width(width).Render(n.Label)
	if n.focused {
		label = focusedLabelStyle.Render(n.Label)
	}

	n.input.Width = max(width-len(n.input.Prompt)-2, 1)
	n.input.Placeholder = n.Placeholder

	field := n.input.View()
	if n.selected {
		field = n.input.Prompt + selectionStyle.Render(n.input.Value())
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}

var _ form.FormInput = (*Number)(nil)
