package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
)

// tickMsg drives the live timer; it carries the sampled wall-clock time.
type tickMsg time.Time

// weekLoadedMsg carries freshly loaded state for the displayed week. clock is
// the open clock even when it started outside that week.
type weekLoadedMsg struct {
	week  tracker.WeekSummary
	clock *domain.ActiveClock
	err   error
}

// clockToggledMsg reports the result of a clock-in or clock-out.
type clockToggledMsg struct {
	status string
	err    error
}

// copiedMsg reports the result of copying a report to the clipboard.
type copiedMsg struct {
	what string
	err  error
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
