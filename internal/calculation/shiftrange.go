package calculation

import (
	"time"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// ShiftRange is the concrete start/end pair of a shift. Valid is false when the
// date or either time failed to parse; Start and End are then zero.
type ShiftRange struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// NormalizeRange turns a date and two times of day into instants. Both times
// are anchored on date; if the end lands before the start it is moved to the
// next calendar day. Parsing happens in UTC so the result is pure calendar
// arithmetic.
func NormalizeRange(date, startTime, endTime string) ShiftRange {
	start, err := dateutil.ParseDateTime(date, dateutil.NormalizeTimeOfDay(startTime), time.UTC)
	if err != nil {
		return ShiftRange{}
	}
	end, err := dateutil.ParseDateTime(date, dateutil.NormalizeTimeOfDay(endTime), time.UTC)
	if err != nil {
		return ShiftRange{}
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return ShiftRange{Start: start, End: end, Valid: true}
}

// RangeOf normalizes the range of a shift.
func RangeOf(s domain.Shift) ShiftRange {
	return NormalizeRange(s.Date, s.StartTime, s.EndTime)
}

// Minutes returns the whole minutes covered by the range, 0 when invalid.
func (r ShiftRange) Minutes() int64 {
	if !r.Valid {
		return 0
	}
	return int64(r.End.Sub(r.Start) / time.Minute)
}

// Overlaps reports strict open-interval intersection. Touching ranges do not
// overlap and an invalid range overlaps nothing.
func (r ShiftRange) Overlaps(other ShiftRange) bool {
	if !r.Valid || !other.Valid {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// ShiftHours returns the worked hours of a shift; unparseable shifts count as 0.
func ShiftHours(s domain.Shift) decimal.Decimal {
	return decimal.NewFromInt(RangeOf(s).Minutes()).Div(minutesPerHour)
}

// ShiftsOverlap reports whether two shifts intersect in time.
func ShiftsOverlap(a, b domain.Shift) bool {
	return RangeOf(a).Overlaps(RangeOf(b))
}

// FindOverlap returns the first shift in existing that overlaps candidate,
// ignoring the shift whose ID equals excludeID (the one being edited).
func FindOverlap(existing []domain.Shift, candidate domain.Shift, excludeID string) (domain.Shift, bool) {
	cr := RangeOf(candidate)
	if !cr.Valid {
		return domain.Shift{}, false
	}
	for _, s := range existing {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if RangeOf(s).Overlaps(cr) {
			return s, true
		}
	}
	return domain.Shift{}, false
}
