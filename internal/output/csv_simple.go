package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per shift, the running clock included.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Date", "Day", "Start", "End", "Hours", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, l := range r.Lines() {
		status := "complete"
		if l.Running {
			status = "running"
		}
		row := []string{
			l.Shift.Date,
			l.Day,
			l.Shift.StartTime,
			l.Shift.EndTime,
			l.Hours.StringFixed(2),
			status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
