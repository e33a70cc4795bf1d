// Package tui is the terminal dashboard: the current week's shifts, a live
// clock-in timer, and the pay estimate.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
	"github.com/rgehrsitz/shiftpay/internal/tui/tuistyles"
)

// Model represents the entire dashboard state
type Model struct {
	svc      *tracker.Service
	now      func() time.Time
	copyText func(string) error

	// anchor is any instant inside the displayed week.
	anchor  time.Time
	week    tracker.WeekSummary
	clock   *domain.ActiveClock
	loaded  bool
	current time.Time

	table table.Model
	help  help.Model
	keys  keyMap

	status string
	err    error

	width  int
	height int
}

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copyText = write }
}

// NewModel creates the dashboard over svc, showing the current week.
func NewModel(svc *tracker.Service, opts ...Option) Model {
	m := Model{
		svc:      svc,
		now:      time.Now,
		copyText: clipboard.WriteAll,
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.anchor = m.now()
	m.current = m.anchor

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Day", Width: 13},
			{Title: "Start", Width: 6},
			{Title: "End", Width: 6},
			{Title: "Hours", Width: 8},
			{Title: "Status", Width: 9},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = tuistyles.TableHeaderStyle
	s.Selected = tuistyles.TableSelectedStyle
	t.SetStyles(s)
	m.table = t

	return m
}

// Init loads the week and starts the timer (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadWeek(), tick())
}

func (m Model) loadWeek() tea.Cmd {
	svc, anchor, now := m.svc, m.anchor, m.now()
	return func() tea.Msg {
		ctx := context.Background()
		clock, err := svc.ActiveClock(ctx)
		if err != nil {
			return weekLoadedMsg{err: err}
		}
		w, err := svc.Week(ctx, anchor, now)
		return weekLoadedMsg{week: w, clock: clock, err: err}
	}
}

func (m Model) toggleClock() tea.Cmd {
	svc, now, running := m.svc, m.now(), m.clock != nil
	return func() tea.Msg {
		ctx := context.Background()
		if running {
			sh, err := svc.ClockOut(ctx, now)
			if err != nil {
				return clockToggledMsg{err: err}
			}
			return clockToggledMsg{status: "Clocked out at " + sh.EndTime}
		}
		c, err := svc.ClockIn(ctx, now)
		if err != nil {
			return clockToggledMsg{err: err}
		}
		return clockToggledMsg{status: "Clocked in at " + c.Time}
	}
}

func (m Model) copyReport(detailed bool) tea.Cmd {
	w, now, write := m.week, m.current, m.copyText
	return func() tea.Msg {
		if detailed {
			text := output.DetailedReport(w.Shifts, w.Settings, w.Stats, w.Clock, now)
			return copiedMsg{what: "detailed report", err: write(text)}
		}
		text := output.SimpleReport(w.Shifts, w.Settings, w.Stats, w.Clock, now)
		return copiedMsg{what: "report", err: write(text)}
	}
}

func (m *Model) refreshTable() {
	lines := m.week.Report().Lines()
	rows := make([]table.Row, 0, len(lines))
	for _, l := range lines {
		status := "done"
		if l.Running {
			status = "running"
		}
		rows = append(rows, table.Row{l.Day, l.Shift.StartTime, l.Shift.EndTime, output.FormatHours(l.Hours), status})
	}
	m.table.SetRows(rows)
}
