package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/domain"
)

// SimpleReport renders the plain share text: one line per shift, the running
// clock if any, and the total hours.
func SimpleReport(shifts []domain.Shift, settings domain.Settings, stats domain.ShiftStats, clock *domain.ActiveClock, now time.Time) string {
	r := Report{Shifts: shifts, Settings: settings, Stats: stats, Clock: clock, Now: now}
	lines := shiftLines(r)
	lines = append(lines, "", "Total Hours: "+FormatHours(stats.TotalHours))
	return strings.Join(lines, "\n")
}

// DetailedReport renders the share text followed by a pay summary.
func DetailedReport(shifts []domain.Shift, settings domain.Settings, stats domain.ShiftStats, clock *domain.ActiveClock, now time.Time) string {
	r := Report{Shifts: shifts, Settings: settings, Stats: stats, Clock: clock, Now: now}
	lines := shiftLines(r)
	lines = append(lines, "", "--- Summary ---", "Total Hours: "+FormatHours(stats.TotalHours))
	if stats.OvertimeHours.IsPositive() {
		lines = append(lines, fmt.Sprintf("Regular: %s | Overtime: %s", FormatHours(stats.RegularHours), FormatHours(stats.OvertimeHours)))
	}
	lines = append(lines,
		"Gross Pay: "+FormatCurrency(stats.GrossPay),
		"Net Pay (Est): "+FormatCurrency(stats.NetPay),
	)
	return strings.Join(lines, "\n")
}

func shiftLines(r Report) []string {
	var lines []string
	for _, l := range r.Lines() {
		if l.Running {
			lines = append(lines, fmt.Sprintf("%s: %s - %s (Running... %s)", l.Day, l.Shift.StartTime, l.Shift.EndTime, FormatHours(l.Hours)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s - %s (%s)", l.Day, l.Shift.StartTime, l.Shift.EndTime, FormatHours(l.Hours)))
	}
	return lines
}

// SimpleFormatter is the plain share text.
var SimpleFormatter = FormatterFunc{ID: "simple", F: func(r Report) ([]byte, error) {
	return []byte(SimpleReport(r.Shifts, r.Settings, r.Stats, r.Clock, r.Now) + "\n"), nil
}}

// DetailedFormatter is the share text with the pay summary.
var DetailedFormatter = FormatterFunc{ID: "detailed", F: func(r Report) ([]byte, error) {
	return []byte(DetailedReport(r.Shifts, r.Settings, r.Stats, r.Clock, r.Now) + "\n"), nil
}}
