// Package importer turns pasted text into shifts. It understands the share
// text the report formatter produces and simple delimited rows.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

// Column is the meaning of one delimited field.
type Column string

const (
	ColumnDate   Column = "date"
	ColumnStart  Column = "start"
	ColumnEnd    Column = "end"
	ColumnIgnore Column = "ignore"
)

// Separators maps the accepted separator names to their characters.
var Separators = map[string]string{
	"comma":     ",",
	"tab":       "\t",
	"space":     " ",
	"semicolon": ";",
}

// Options controls delimited parsing. Share-format lines are always
// recognized regardless of Options.
type Options struct {
	Separator string
	Columns   [3]Column
	// Now supplies the year for share-format lines, which carry none.
	Now time.Time
}

// DefaultOptions is comma separated date,start,end.
func DefaultOptions(now time.Time) Options {
	return Options{
		Separator: ",",
		Columns:   [3]Column{ColumnDate, ColumnStart, ColumnEnd},
		Now:       now,
	}
}

// ParseSeparator accepts a separator name ("comma", "tab", ...) or the
// literal character.
func ParseSeparator(s string) (string, error) {
	if sep, ok := Separators[strings.ToLower(s)]; ok {
		return sep, nil
	}
	for _, sep := range Separators {
		if s == sep {
			return sep, nil
		}
	}
	return "", fmt.Errorf("unknown separator %q (use comma, tab, space or semicolon)", s)
}

// ParseColumns parses a column map such as "date,start,end" or
// "ignore,date,start". Missing trailing slots are ignored.
func ParseColumns(s string) ([3]Column, error) {
	cols := [3]Column{ColumnIgnore, ColumnIgnore, ColumnIgnore}
	parts := strings.Split(s, ",")
	if len(parts) > len(cols) {
		return cols, fmt.Errorf("column map %q has more than %d entries", s, len(cols))
	}
	for i, p := range parts {
		c := Column(strings.ToLower(strings.TrimSpace(p)))
		switch c {
		case ColumnDate, ColumnStart, ColumnEnd, ColumnIgnore:
			cols[i] = c
		default:
			return cols, fmt.Errorf("unknown column %q (use date, start, end or ignore)", p)
		}
	}
	return cols, nil
}

// Result is the outcome of one import. Shifts have no IDs yet.
type Result struct {
	Shifts  []domain.Shift
	Skipped int
	Lines   int
}

// Summary returns the status line shown after parsing, or "" when every
// non-blank line produced a shift.
func (r Result) Summary() string {
	switch {
	case r.Lines == 0:
		return ""
	case len(r.Shifts) == 0:
		return "No shifts detected. Ensure the format matches your CSV settings."
	case r.Skipped > 0:
		return fmt.Sprintf("Detected %d shifts. Skipped %d lines.", len(r.Shifts), r.Skipped)
	}
	return ""
}

// "Mon, Oct 24: 08:00 - 17:00 (8.00h)"
var shareLine = regexp.MustCompile(`^([a-zA-Z]+, [a-zA-Z]+ \d+):\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)

// Parse parses pasted text line by line. Lines that yield no valid shift are
// counted in Skipped; blank lines are ignored.
func Parse(text string, opts Options) Result {
	res, _ := ParseReader(strings.NewReader(text), opts)
	return res
}

// ParseReader is Parse over a reader.
func ParseReader(r io.Reader, opts Options) (Result, error) {
	var res Result
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		res.Lines++
		s, ok := parseShareLine(line, opts.Now)
		if !ok {
			s, ok = parseDelimited(line, opts)
		}
		if !ok || !calculation.RangeOf(s).Valid {
			res.Skipped++
			continue
		}
		res.Shifts = append(res.Shifts, s)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read import: %w", err)
	}
	return res, nil
}

func parseShareLine(line string, now time.Time) (domain.Shift, bool) {
	m := shareLine.FindStringSubmatch(line)
	if m == nil {
		return domain.Shift{}, false
	}
	// The weekday is only checked for syntax; the date is month + day + year.
	date, err := time.Parse("Mon, Jan 2 2006", fmt.Sprintf("%s %d", m[1], now.Year()))
	if err != nil {
		return domain.Shift{}, false
	}
	return domain.Shift{
		Date:      dateutil.FormatDate(date),
		StartTime: padClock(m[2]),
		EndTime:   padClock(m[3]),
	}, true
}

func parseDelimited(line string, opts Options) (domain.Shift, bool) {
	sep := opts.Separator
	if sep == "" {
		sep = ","
	}
	parts := strings.Split(line, sep)
	var dateStr, startStr, endStr string
	for i, col := range opts.Columns {
		if i >= len(parts) {
			break
		}
		v := strings.TrimSpace(parts[i])
		if v == "" {
			continue
		}
		switch col {
		case ColumnDate:
			dateStr = v
		case ColumnStart:
			startStr = v
		case ColumnEnd:
			endStr = v
		}
	}
	if startStr == "" || endStr == "" {
		return domain.Shift{}, false
	}
	date, ok := parseLooseDate(dateStr)
	if !ok {
		return domain.Shift{}, false
	}
	return domain.Shift{
		Date:      dateutil.FormatDate(date),
		StartTime: normalizeImportTime(startStr),
		EndTime:   normalizeImportTime(endStr),
	}, true
}

var looseDateLayouts = []string{
	dateutil.DateLayout,
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 Jan 2006",
	"Mon, Jan 2, 2006",
	"Mon Jan 2 2006",
	time.RFC3339,
}

func parseLooseDate(s string) (time.Time, bool) {
	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// padClock left-pads "8:00" to "08:00".
func padClock(t string) string {
	if len(t) < 5 {
		return strings.Repeat("0", 5-len(t)) + t
	}
	return t
}

// normalizeImportTime turns 4 digit times like "0800" into "08:00" and pads a
// single digit hour.
func normalizeImportTime(t string) string {
	if len(t) == 4 && !strings.Contains(t, ":") {
		return t[:2] + ":" + t[2:]
	}
	if i := strings.Index(t, ":"); i == 1 {
		return "0" + t
	}
	return t
}
