package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the storage format of shift dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the storage format of times of day.
	TimeLayout = "15:04"
	// DateTimeLayout joins DateLayout and TimeLayout with a space.
	DateTimeLayout = DateLayout + " " + TimeLayout
	// ShortDayLayout renders e.g. "Mon, Oct 24".
	ShortDayLayout = "Mon, Jan 2"
)

// NormalizeTimeOfDay pads "8:5" to "08:05". An empty value becomes "00:00";
// a value without a colon is returned untouched and will fail to parse later.
// Seconds, if present, are dropped.
func NormalizeTimeOfDay(t string) string {
	if t == "" {
		return "00:00"
	}
	if !strings.Contains(t, ":") {
		return t
	}
	parts := strings.Split(t, ":")
	return padTwo(parts[0]) + ":" + padTwo(parts[1])
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.UTC)
}

// ParseDateTime parses a calendar date and an already normalized HH:MM time of
// day in loc.
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders t as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format(TimeLayout)
}

// ShortDay renders a stored date as "Mon, Oct 24". Unparseable dates are
// returned as given.
func ShortDay(date string) string {
	d, err := ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format(ShortDayLayout)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekRange returns the first and last day of the week containing t, with the
// week beginning on weekStart. The end is 23:59:59.999999999 of the last day.
func WeekRange(t time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	start := StartOfDay(t).AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// WeekLabel renders a week range like "Oct 20 - Oct 26, 2024".
func WeekLabel(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// InRange reports whether the stored date falls within [start, end]. The date
// is interpreted in start's location. Unparseable dates are never in range.
func InRange(date string, start, end time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, date, start.Location())
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}
