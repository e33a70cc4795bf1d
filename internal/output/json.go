package output

import (
	"encoding/json"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// JSONFormatter emits the week's shifts and stats as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonShift struct {
	domain.Shift
	Hours   decimal.Decimal `json:"hours"`
	Running bool            `json:"running,omitempty"`
}

type jsonReport struct {
	WeekStart string            `json:"weekStart,omitempty"`
	WeekEnd   string            `json:"weekEnd,omitempty"`
	Company   string            `json:"companyName,omitempty"`
	Shifts    []jsonShift       `json:"shifts"`
	Stats     domain.ShiftStats `json:"stats"`
}

func (j JSONFormatter) Format(r Report) ([]byte, error) {
	out := jsonReport{
		Company: r.Settings.CompanyName,
		Shifts:  []jsonShift{},
		Stats:   r.Stats,
	}
	if !r.WeekStart.IsZero() {
		out.WeekStart = dateutil.FormatDate(r.WeekStart)
		out.WeekEnd = dateutil.FormatDate(r.WeekEnd)
	}
	for _, l := range r.Lines() {
		out.Shifts = append(out.Shifts, jsonShift{Shift: l.Shift, Hours: l.Hours, Running: l.Running})
	}
	return json.MarshalIndent(out, "", "  ")
}
