package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/shiftpay/internal/tracker"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-22))
		return m, nil

	case tickMsg:
		m.current = time.Time(msg)
		// Only a running clock changes between ticks.
		if m.loaded && m.week.Clock != nil {
			m.week = tracker.Summarize(m.svc.Engine(), m.week.Shifts, m.week.Clock, m.week.Settings, m.anchor, m.current)
			m.refreshTable()
		}
		return m, tick()

	case weekLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.week = msg.week
		m.clock = msg.clock
		m.current = msg.week.Now
		m.loaded = true
		m.refreshTable()
		return m, nil

	case clockToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		// Show the week the timer lives in.
		m.anchor = m.now()
		return m, m.loadWeek()

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Copied " + msg.what + " to clipboard"
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleClock()

	case key.Matches(msg, m.keys.PrevWeek):
		m.anchor = m.anchor.AddDate(0, 0, -7)
		return m, m.loadWeek()

	case key.Matches(msg, m.keys.NextWeek):
		m.anchor = m.anchor.AddDate(0, 0, 7)
		return m, m.loadWeek()

	case key.Matches(msg, m.keys.ThisWeek):
		m.anchor = m.now()
		return m, m.loadWeek()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadWeek()

	case key.Matches(msg, m.keys.CopySimple):
		return m, m.copyReport(false)

	case key.Matches(msg, m.keys.CopyDetailed):
		return m, m.copyReport(true)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
