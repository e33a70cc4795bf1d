package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
	"github.com/rgehrsitz/shiftpay/internal/tui/components"
	"github.com/rgehrsitz/shiftpay/internal/tui/tuistyles"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

// View renders the dashboard
func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return tuistyles.AppStyle.Render(tuistyles.ErrorStyle.Render("Error: " + tracker.UserMessage(m.err)))
		}
		return tuistyles.AppStyle.Render("Loading...")
	}

	sections := []string{
		m.renderTitleBar(),
		m.renderTimer(),
		components.NewHoursBar(m.week.Stats.TotalHours, m.week.Settings.OvertimeThreshold).Render(),
		tuistyles.BorderStyle.Render(m.table.View()),
		m.renderStats(),
		m.renderStatusLine(),
		m.help.View(m.keys),
	}
	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderTitleBar() string {
	title := "ShiftPay"
	if m.week.Settings.CompanyName != "" {
		title += " · " + m.week.Settings.CompanyName
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.TitleStyle.Render(title),
		tuistyles.SubtitleStyle.Render("◀ "+m.week.Label+" ▶"),
	)
}

// renderTimer shows the open clock even when it belongs to another week.
func (m Model) renderTimer() string {
	if m.clock == nil {
		return tuistyles.IdleStyle.Render("○ Not clocked in")
	}
	since := fmt.Sprintf("● Clocked in since %s (%s)", m.clock.Time, dateutil.ShortDay(m.clock.Date))
	return tuistyles.RunningStyle.Render(since) + "  " +
		tuistyles.TimerStyle.Render(calculation.ElapsedDisplay(*m.clock, m.current))
}

func (m Model) renderStats() string {
	st := m.week.Stats
	gross := components.NewMoneyCard("Gross", st.GrossPay)
	switch {
	case st.GuaranteeApplied:
		gross.WithNote("weekly minimum")
	case st.OvertimeHours.IsPositive():
		gross.WithNote("OT " + output.FormatHours(st.OvertimeHours))
	}

	net := components.NewMoneyCard("Net (est)", st.NetPay)
	if m.week.Settings.TaxSettings.Is1099 {
		net.WithNote("1099, no withholding")
	}

	cards := []*components.MetricCard{
		gross,
		components.NewMoneyCard("Federal", st.EstimatedFederalTax),
		components.NewMoneyCard("State", st.EstimatedStateTax),
		components.NewMoneyCard("FICA", st.EstimatedFICA),
		net,
	}
	columns := 5
	if m.width < 100 {
		columns = 3
	}
	return components.MetricGrid(cards, columns)
}

func (m Model) renderStatusLine() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render(tracker.UserMessage(m.err))
	}
	if m.status != "" {
		return tuistyles.InfoStyle.Render(m.status)
	}
	return ""
}
