package output

import (
	"sort"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Report is everything a formatter needs to render one week.
type Report struct {
	Shifts   []domain.Shift
	Settings domain.Settings
	Stats    domain.ShiftStats
	// Clock is the open clock, if any. It is rendered as a running line
	// measured against Now.
	Clock     *domain.ActiveClock
	Now       time.Time
	WeekStart time.Time
	WeekEnd   time.Time
}

// ShiftLine is one rendered shift row.
type ShiftLine struct {
	Shift   domain.Shift
	Day     string
	Hours   decimal.Decimal
	Running bool
}

// Lines returns the committed shifts sorted ascending by date, followed by the
// running line for an open clock. Shifts on the same date keep input order.
func (r Report) Lines() []ShiftLine {
	sorted := append([]domain.Shift(nil), r.Shifts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	lines := make([]ShiftLine, 0, len(sorted)+1)
	for _, s := range sorted {
		lines = append(lines, ShiftLine{
			Shift: s,
			Day:   dateutil.ShortDay(s.Date),
			Hours: calculation.ShiftHours(s),
		})
	}
	if r.Clock != nil {
		lines = append(lines, ShiftLine{
			Shift:   calculation.SyntheticShift(*r.Clock, r.Now),
			Day:     dateutil.ShortDay(r.Clock.Date),
			Hours:   calculation.ElapsedHours(*r.Clock, r.Now),
			Running: true,
		})
	}
	return lines
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatHours formats hours with two decimals and an "h" suffix.
func FormatHours(hours decimal.Decimal) string {
	return hours.StringFixed(2) + "h"
}
