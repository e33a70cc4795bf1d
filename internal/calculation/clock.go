package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ClockIn opens a clock at now.
func ClockIn(now time.Time) domain.ActiveClock {
	return domain.ActiveClock{
		Date:      dateutil.FormatDate(now),
		Time:      dateutil.FormatClock(now),
		Timestamp: now.UnixMilli(),
	}
}

// ClockOut closes the clock into a committed shift ending at now.
func ClockOut(clock domain.ActiveClock, now time.Time, id string) domain.Shift {
	return domain.Shift{
		ID:        id,
		Date:      clock.Date,
		StartTime: clock.Time,
		EndTime:   dateutil.FormatClock(now),
	}
}

// SyntheticShift is the in-progress shift used for live stats. It is never
// persisted.
func SyntheticShift(clock domain.ActiveClock, now time.Time) domain.Shift {
	return ClockOut(clock, now, domain.ActiveShiftID)
}

// clockStart parses the clock's wall-clock start in now's location.
func clockStart(clock domain.ActiveClock, now time.Time) (time.Time, bool) {
	start, err := dateutil.ParseDateTime(clock.Date, dateutil.NormalizeTimeOfDay(clock.Time), now.Location())
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// ElapsedHours returns whole minutes from the clock start to now, in hours.
// It is 0 when the start cannot be parsed and negative if now precedes it.
func ElapsedHours(clock domain.ActiveClock, now time.Time) decimal.Decimal {
	start, ok := clockStart(clock, now)
	if !ok {
		return decimal.Zero
	}
	minutes := int64(now.Sub(start) / time.Minute)
	return decimal.NewFromInt(minutes).Div(minutesPerHour)
}

// ElapsedDisplay renders the running timer as HH:MM:SS. A start in the future
// or an unparseable start shows 00:00:00.
func ElapsedDisplay(clock domain.ActiveClock, now time.Time) string {
	start, ok := clockStart(clock, now)
	if !ok {
		return "00:00:00"
	}
	secs := int64(now.Sub(start) / time.Second)
	if secs < 0 {
		return "00:00:00"
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
