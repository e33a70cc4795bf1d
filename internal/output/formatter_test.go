package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport() Report {
	return Report{
		Shifts: []domain.Shift{
			{ID: "2", Date: "2024-10-25", StartTime: "09:00", EndTime: "17:00"},
			{ID: "1", Date: "2024-10-24", StartTime: "22:00", EndTime: "06:00"},
		},
		Settings: domain.Settings{CompanyName: "Acme Diner"},
		Stats: domain.ShiftStats{
			TotalHours:    decimal.NewFromInt(16),
			RegularHours:  decimal.NewFromInt(16),
			OvertimeHours: decimal.Zero,
			GrossPay:      decimal.NewFromInt(320),
			NetPay:        decimal.RequireFromString("270.1234"),
		},
		Now:       time.Date(2024, 10, 26, 10, 15, 0, 0, time.UTC),
		WeekStart: time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2024, 10, 26, 23, 59, 59, 0, time.UTC),
	}
}

func TestSimpleReport(t *testing.T) {
	r := buildTestReport()
	got := SimpleReport(r.Shifts, r.Settings, r.Stats, nil, r.Now)

	want := strings.Join([]string{
		"Thu, Oct 24: 22:00 - 06:00 (8.00h)",
		"Fri, Oct 25: 09:00 - 17:00 (8.00h)",
		"",
		"Total Hours: 16.00h",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSimpleReport_RunningClock(t *testing.T) {
	r := buildTestReport()
	clock := &domain.ActiveClock{Date: "2024-10-26", Time: "08:00"}

	got := SimpleReport(r.Shifts, r.Settings, r.Stats, clock, r.Now)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Sat, Oct 26: 08:00 - 10:15 (Running... 2.25h)", lines[2])
	assert.Equal(t, "Total Hours: 16.00h", lines[4])
}

func TestSimpleReport_NoShifts(t *testing.T) {
	got := SimpleReport(nil, domain.Settings{}, domain.ShiftStats{}, nil, time.Now())
	assert.Equal(t, "\nTotal Hours: 0.00h", got)
}

func TestSimpleReport_UnparseableDate(t *testing.T) {
	shifts := []domain.Shift{{Date: "someday", StartTime: "09:00", EndTime: "17:00"}}
	got := SimpleReport(shifts, domain.Settings{}, domain.ShiftStats{}, nil, time.Now())
	assert.True(t, strings.HasPrefix(got, "someday: 09:00 - 17:00 (0.00h)"))
}

func TestSimpleReport_StableForSameDate(t *testing.T) {
	shifts := []domain.Shift{
		{Date: "2024-10-24", StartTime: "13:00", EndTime: "15:00"},
		{Date: "2024-10-24", StartTime: "08:00", EndTime: "12:00"},
	}
	got := SimpleReport(shifts, domain.Settings{}, domain.ShiftStats{}, nil, time.Now())
	lines := strings.Split(got, "\n")
	assert.Equal(t, "Thu, Oct 24: 13:00 - 15:00 (2.00h)", lines[0])
	assert.Equal(t, "Thu, Oct 24: 08:00 - 12:00 (4.00h)", lines[1])
}

func TestDetailedReport(t *testing.T) {
	r := buildTestReport()
	got := DetailedReport(r.Shifts, r.Settings, r.Stats, nil, r.Now)

	want := strings.Join([]string{
		"Thu, Oct 24: 22:00 - 06:00 (8.00h)",
		"Fri, Oct 25: 09:00 - 17:00 (8.00h)",
		"",
		"--- Summary ---",
		"Total Hours: 16.00h",
		"Gross Pay: $320.00",
		"Net Pay (Est): $270.12",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDetailedReport_Overtime(t *testing.T) {
	stats := domain.ShiftStats{
		TotalHours:    decimal.NewFromInt(45),
		RegularHours:  decimal.NewFromInt(40),
		OvertimeHours: decimal.NewFromInt(5),
		GrossPay:      decimal.NewFromInt(950),
		NetPay:        decimal.RequireFromString("-12.5"),
	}
	got := DetailedReport(nil, domain.Settings{}, stats, nil, time.Now())

	assert.Contains(t, got, "Total Hours: 45.00h\nRegular: 40.00h | Overtime: 5.00h\nGross Pay: $950.00")
	assert.True(t, strings.HasSuffix(got, "Net Pay (Est): $-12.50"))
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(r Report) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestReport())
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "test output", string(out))
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestShareFormatters(t *testing.T) {
	r := buildTestReport()

	out, err := GetFormatterByName("simple").Format(r)
	require.NoError(t, err)
	assert.Equal(t, SimpleReport(r.Shifts, r.Settings, r.Stats, r.Clock, r.Now)+"\n", string(out))

	out, err = GetFormatterByName("detailed").Format(r)
	require.NoError(t, err)
	assert.Equal(t, DetailedReport(r.Shifts, r.Settings, r.Stats, r.Clock, r.Now)+"\n", string(out))
}

func TestWriteFormatted(t *testing.T) {
	chdir(t, t.TempDir())

	formatter := FormatterFunc{ID: "x", F: func(Report) ([]byte, error) { return []byte("content"), nil }}
	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	require.NoError(t, err)
	assert.Equal(t, "shiftpay_report_20241026_101500.txt", filename, "named after the report time")

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{ID: "err", F: func(Report) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"simple":   "simple",
		"SHARE":    "simple",
		"verbose":  "detailed",
		" csv ":    "csv",
		"json":     "json",
		"html":     "html",
		"detailed": "detailed",
	}
	for in, want := range tests {
		f := GetFormatterByName(in)
		require.NotNil(t, f, "formatter for %q", in)
		assert.Equal(t, want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"csv", "detailed", "html", "json", "simple"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "verbose")
}

func TestCSVFormatter_Format(t *testing.T) {
	r := buildTestReport()
	r.Clock = &domain.ActiveClock{Date: "2024-10-26", Time: "08:00"}

	out, err := CSVFormatter{}.Format(r)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date,Day,Start,End,Hours,Status", lines[0])
	assert.Equal(t, `2024-10-24,"Thu, Oct 24",22:00,06:00,8.00,complete`, lines[1])
	assert.Equal(t, `2024-10-26,"Sat, Oct 26",08:00,10:15,2.25,running`, lines[3])
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded struct {
		WeekStart string `json:"weekStart"`
		Company   string `json:"companyName"`
		Shifts    []struct {
			ID    string          `json:"id"`
			Hours decimal.Decimal `json:"hours"`
		} `json:"shifts"`
		Stats domain.ShiftStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "2024-10-20", decoded.WeekStart)
	assert.Equal(t, "Acme Diner", decoded.Company)
	require.Len(t, decoded.Shifts, 2)
	assert.Equal(t, "1", decoded.Shifts[0].ID)
	assert.True(t, decoded.Shifts[0].Hours.Equal(decimal.NewFromInt(8)))
	assert.True(t, decoded.Stats.TotalHours.Equal(decimal.NewFromInt(16)))
}

func TestHTMLFormatter_Format(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>Acme Diner Timesheet - Oct 20 - Oct 26, 2024</title>")
	assert.Contains(t, content, "Net Pay (Est)</td><td class=\"num\">$270.12")
	assert.NotContains(t, content, "Regular / Overtime")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "8.25h", FormatHours(decimal.RequireFromString("8.25")))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
