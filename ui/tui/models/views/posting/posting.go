// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package posting is the posting editor: a form for title, currency and the
// salary range above a list of the most recent drafts.
package posting

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hireu/hireu/internal/db"
	"github.com/hireu/hireu/internal/i18n"
	"github.com/hireu/hireu/internal/logging"
	"github.com/hireu/hireu/internal/model"
	"github.com/hireu/hireu/internal/numinput"
	"github.com/hireu/hireu/ui/tui/models/helpers/form"
	forminput "github.com/hireu/hireu/ui/tui/models/helpers/form/input"
	windowtitle "github.com/hireu/hireu/ui/tui/models/helpers/title"
	"github.com/hireu/hireu/ui/tui/models/views/footer"
	"github.com/hireu/hireu/ui/tui/util"
)

const (
	recentLimit  = 5
	storeTimeout = 5 * time.Second
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	recentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Values is what the form decodes into. Salaries are raw digit strings.
type Values struct {
	Title     string `mapstructure:"title"`
	Currency  string `mapstructure:"currency"`
	SalaryMin string `mapstructure:"salary_min"`
	SalaryMax string `mapstructure:"salary_max"`
}

// Options configures the editor.
type Options struct {
	// Store receives saved postings. Without a store the editor only
	// validates.
	Store db.Store
	// Currencies are offered by the currency selector.
	Currencies []string
	// Currency is preselected.
	Currency string
	// Floor is the lowest accepted minimum salary.
	Floor uint64
}

type (
	savedMsg     struct{ posting model.Posting }
	saveErrMsg   struct{ err error }
	discardedMsg struct{}
	loadedMsg    struct {
		postings []model.Posting
		err      error
	}
)

type Model struct {
	store    db.Store
	floor    uint64
	currency *forminput.Choice
	form     form.Form[Values]
	recent   []model.Posting
	size     util.Size
}

func New(opts Options) *Model {
	loc, err := numinput.ParseLocale(opts.Currency)
	if err != nil {
		logging.Warnf("posting editor: %v, falling back to %s", err, numinput.USD)
		loc = numinput.USD
	}
	currencies := slices.Clone(opts.Currencies)
	if !slices.ContainsFunc(currencies, func(c string) bool { return strings.EqualFold(c, loc.String()) }) {
		currencies = append([]string{loc.String()}, currencies...)
	}

	m := &Model{
		store:    opts.Store,
		floor:    opts.Floor,
		currency: forminput.NewChoice(i18n.T("posting.currency"), currencies, loc.String()),
	}
	m.currency.OnChange = forminput.CurrencyChangedCmd

	minimum := forminput.NewNumber("salary_min", i18n.T("posting.salary_min"), loc)
	if opts.Floor > 0 {
		minimum.Placeholder = i18n.T("posting.salary_min_placeholder", numinput.Format(strconv.FormatUint(opts.Floor, 10), loc))
	}
	maximum := forminput.NewNumber("salary_max", i18n.T("posting.salary_max"), loc)
	maximum.Placeholder = i18n.T("posting.salary_max_placeholder")

	m.form = form.New(
		form.WithInput[Values]("title", forminput.NewText(i18n.T("posting.title"), i18n.T("posting.title_placeholder"), 120)),
		form.WithInput[Values]("currency", m.currency),
		form.WithRow[Values](
			form.Field{ID: "salary_min", Input: minimum},
			form.Field{ID: "salary_max", Input: maximum},
		),
		form.WithInput[Values]("submit", forminput.NewButton(i18n.T("posting.save"))),
		form.WithOnSubmit(m.submit),
		form.WithOnCancel[Values](func() tea.Cmd {
			return func() tea.Msg { return discardedMsg{} }
		}),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.loadRecent(), windowtitle.Set(m.currency.Selected()))
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		// leave room for the padding
		inner := tea.WindowSizeMsg{Width: max(m.size.Width-2, 0), Height: m.size.Height}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(inner)
		return cmd
	}

	switch msg := msg.(type) {
	case savedMsg:
		return tea.Batch(
			m.reset(),
			footer.SetStatus(i18n.T("posting.saved", msg.posting.String()), false),
			m.loadRecent(),
		)
	case saveErrMsg:
		logging.Warnf("save posting: %v", msg.err)
		return footer.SetStatus(m.describeError(msg.err), true)
	case discardedMsg:
		return tea.Batch(m.reset(), footer.SetStatus(i18n.T("posting.discarded"), false))
	case loadedMsg:
		if msg.err != nil {
			logging.Errorf("list postings: %v", msg.err)
			return footer.SetStatus(m.describeError(msg.err), true)
		}
		m.recent = msg.postings
		return nil
	case forminput.CurrencyChangedMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return tea.Batch(cmd, windowtitle.Set(msg.Currency))
	case forminput.ValueChangedMsg:
		logging.Debugf("posting editor: %s = %q", msg.ID, msg.Raw)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

// reset clears the form and moves the salary inputs back to the
// preselected currency.
func (m *Model) reset() tea.Cmd {
	cmd := m.form.Reset()
	return tea.Batch(cmd, forminput.CurrencyChangedCmd(m.currency.Selected()))
}

// Values returns the decoded form values.
func (m *Model) Values() (Values, error) {
	return m.form.Get()
}

func (m *Model) Recent() []model.Posting { return m.recent }

func (m *Model) submit(v Values, err error) tea.Cmd {
	if err != nil {
		return footer.SetStatus(m.describeError(err), true)
	}

	p := model.Posting{
		Title:     strings.TrimSpace(v.Title),
		Currency:  v.Currency,
		SalaryMin: v.SalaryMin,
		SalaryMax: v.SalaryMax,
	}
	if err := p.Validate(m.floor); err != nil {
		return footer.SetStatus(m.describeError(err), true)
	}
	if m.store == nil {
		return footer.SetStatus(i18n.T("posting.valid", p.String()), false)
	}

	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.SavePosting(ctx, &p); err != nil {
			return saveErrMsg{err: err}
		}
		return savedMsg{posting: p}
	}
}

func (m *Model) loadRecent() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		postings, err := store.ListPostings(ctx, db.ListOptions{Limit: recentLimit})
		return loadedMsg{postings: postings, err: err}
	}
}

func (m *Model) describeError(err error) string {
	switch {
	case errors.Is(err, model.ErrTitleRequired):
		return i18n.T("error.title_required")
	case errors.Is(err, numinput.ErrEmpty):
		return i18n.T("error.salary_required")
	case errors.Is(err, numinput.ErrBelowMinimum):
		loc := numinput.Locale(m.currency.Selected())
		return i18n.T("error.below_minimum", loc.String()+" "+numinput.Format(strconv.FormatUint(m.floor, 10), loc))
	case errors.Is(err, model.ErrRangeInverted):
		return i18n.T("error.range_inverted")
	case errors.Is(err, numinput.ErrUnknownCurrency):
		return i18n.T("error.unknown_currency")
	case errors.Is(err, db.ErrDuplicate):
		return i18n.T("error.duplicate")
	}
	return i18n.T("error.generic", err.Error())
}

func (m *Model) View() string {
	sections := []string{m.form.View()}
	if m.store != nil {
		lines := []string{sectionStyle.Render(i18n.T("posting.recent"))}
		if len(m.recent) == 0 {
			lines = append(lines, recentStyle.Render(i18n.T("posting.none")))
		}
		for _, p := range m.recent {
			lines = append(lines, recentStyle.Render(p.String()))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
