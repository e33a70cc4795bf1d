package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

// WeekSummary is the weekly view: the week's committed shifts, the open
// clock when it started inside the week, and the stats over both.
type WeekSummary struct {
	Start    time.Time
	End      time.Time
	Label    string
	Shifts   []domain.Shift
	Clock    *domain.ActiveClock
	Settings domain.Settings
	Stats    domain.ShiftStats
	Now      time.Time
}

// Week computes the summary of the week containing anchor. now is the
// instant the running clock is measured against.
func (s *Service) Week(ctx context.Context, anchor, now time.Time) (WeekSummary, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return WeekSummary{}, err
	}
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return WeekSummary{}, err
	}
	clock, err := s.repo.LoadClock(ctx)
	if err != nil {
		return WeekSummary{}, err
	}
	return Summarize(s.engine, shifts, clock, settings, anchor, now), nil
}

// Summarize builds a WeekSummary from already loaded state.
func Summarize(engine *calculation.CalculationEngine, shifts []domain.Shift, clock *domain.ActiveClock, settings domain.Settings, anchor, now time.Time) WeekSummary {
	start, end := WeekOf(anchor, settings)
	w := WeekSummary{
		Start:    start,
		End:      end,
		Label:    dateutil.WeekLabel(start, end),
		Shifts:   []domain.Shift{},
		Settings: settings,
		Now:      now,
	}
	for _, sh := range shifts {
		if dateutil.InRange(sh.Date, start, end) {
			w.Shifts = append(w.Shifts, sh)
		}
	}

	toCalc := w.Shifts
	if clock != nil && dateutil.InRange(clock.Date, start, end) {
		c := *clock
		w.Clock = &c
		toCalc = append(append([]domain.Shift(nil), w.Shifts...), calculation.SyntheticShift(c, now))
	}
	w.Stats = engine.CalculateWeeklyStats(toCalc, settings)
	return w
}

// Report converts the summary into formatter input.
func (w WeekSummary) Report() output.Report {
	return output.Report{
		Shifts:    w.Shifts,
		Settings:  w.Settings,
		Stats:     w.Stats,
		Clock:     w.Clock,
		Now:       w.Now,
		WeekStart: w.Start,
		WeekEnd:   w.End,
	}
}

// Render formats the summary with the named formatter.
func (w WeekSummary) Render(format string) ([]byte, error) {
	f := output.GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("unknown report format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	return f.Format(w.Report())
}
