// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package posting

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hireu/hireu/internal/db"
	"github.com/hireu/hireu/internal/i18n"
	forminput "github.com/hireu/hireu/ui/tui/models/helpers/form/input"
	"github.com/hireu/hireu/ui/tui/models/views/footer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) db.Store {
	t.Helper()
	s, err := db.NewStoreFromDSN("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newEditor(t *testing.T, store db.Store, floor uint64) *Model {
	t.Helper()
	i18n.Init("en")
	m := New(Options{Store: store, Currencies: []string{"USD", "INR"}, Currency: "USD", Floor: floor})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Focus()
	return m
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func tab(m *Model) { m.Update(tea.KeyMsg{Type: tea.KeyTab}) }

func status(t *testing.T, cmd tea.Cmd) footer.StatusMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(footer.StatusMsg)
	require.True(t, ok, "expected a footer.StatusMsg")
	return msg
}

func TestEditor_KeyboardFillsValues(t *testing.T) {
	m := newEditor(t, nil, 0)

	typeRunes(m, "Data Engineer")
	tab(m)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	// the choice's command is not run here, deliver its message directly
	m.Update(forminput.CurrencyChangedMsg{Currency: "INR"})
	tab(m)
	typeRunes(m, "500000")
	tab(m)
	typeRunes(m, "1200000")

	v, err := m.Values()
	require.NoError(t, err)
	assert.Equal(t, Values{Title: "Data Engineer", Currency: "INR", SalaryMin: "500000", SalaryMax: "1200000"}, v)
	assert.Contains(t, m.View(), "12,00,000")
}

func TestEditor_SubmitValidates(t *testing.T) {
	m := newEditor(t, nil, 30000)

	st := status(t, m.submit(Values{Currency: "USD", SalaryMin: "40000"}, nil))
	assert.True(t, st.Error)
	assert.Equal(t, i18n.T("error.title_required"), st.Text)

	st = status(t, m.submit(Values{Title: "QA", Currency: "USD", SalaryMin: "20000"}, nil))
	assert.True(t, st.Error)
	assert.Contains(t, st.Text, "USD 30,000")

	st = status(t, m.submit(Values{Title: "QA", Currency: "USD", SalaryMin: "40000", SalaryMax: "35000"}, nil))
	assert.True(t, st.Error)
	assert.Equal(t, i18n.T("error.range_inverted"), st.Text)

	st = status(t, m.submit(Values{Title: "QA", Currency: "USD", SalaryMin: "40000"}, nil))
	assert.False(t, st.Error)
}

func TestEditor_SaveResetsAndReloads(t *testing.T) {
	store := newTestStore(t)
	m := newEditor(t, store, 0)

	typeRunes(m, "SRE")

	cmd := m.submit(Values{Title: " SRE ", Currency: "INR", SalaryMin: "1500000"}, nil)
	saved, ok := cmd().(savedMsg)
	require.True(t, ok, "expected savedMsg")
	assert.NotZero(t, saved.posting.ID)
	assert.Equal(t, "SRE", saved.posting.Title)

	m.Update(saved)
	v, err := m.Values()
	require.NoError(t, err)
	assert.Equal(t, "", v.Title, "form should reset after save")

	loaded := m.loadRecent()()
	m.Update(loaded)
	require.Len(t, m.Recent(), 1)
	assert.Contains(t, m.View(), "INR 15,00,000+")

	// same title and currency again
	cmd = m.submit(Values{Title: "SRE", Currency: "INR", SalaryMin: "1600000"}, nil)
	failed, ok := cmd().(saveErrMsg)
	require.True(t, ok, "expected saveErrMsg")
	st := status(t, m.Update(failed))
	assert.Equal(t, i18n.T("error.duplicate"), st.Text)

	postings, err := store.ListPostings(context.Background(), db.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, postings, 1)
}

func TestEditor_EscDiscards(t *testing.T) {
	m := newEditor(t, nil, 0)
	typeRunes(m, "Draft")
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m.Update(discardedMsg{})
	v, _ := m.Values()
	assert.Equal(t, "", v.Title)
	assert.False(t, strings.Contains(m.View(), "Draft"))
}
