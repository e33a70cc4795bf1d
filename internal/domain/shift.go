package domain

// Shift is one committed block of work. StartTime and EndTime are wall-clock
// times on Date; an EndTime earlier than StartTime means the shift runs past
// midnight into the next day.
type Shift struct {
	ID        string `json:"id" yaml:"id"`
	Date      string `json:"date" yaml:"date"`             // YYYY-MM-DD
	StartTime string `json:"startTime" yaml:"start_time"` // HH:MM
	EndTime   string `json:"endTime" yaml:"end_time"`     // HH:MM
}

// HasRequiredFields reports whether date, start and end are all filled in.
func (s Shift) HasRequiredFields() bool {
	return s.Date != "" && s.StartTime != "" && s.EndTime != ""
}

// ActiveShiftID is the ID given to the synthetic shift built from an open clock.
const ActiveShiftID = "temp-active"

// ActiveClock is an open, not yet committed shift started by a clock-in.
type ActiveClock struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds of the clock-in
}
