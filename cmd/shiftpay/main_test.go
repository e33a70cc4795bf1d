package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/shiftpay/internal/tracker"
)

type cli struct {
	t       *testing.T
	dataDir string
	now     time.Time
	copied  []string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	chdir(t, t.TempDir())
	c := &cli{t: t, dataDir: t.TempDir(), now: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)}

	oldNow, oldCopy := nowFunc, copyText
	nowFunc = func() time.Time { return c.now }
	copyText = func(s string) error {
		c.copied = append(c.copied, s)
		return nil
	}
	t.Cleanup(func() { nowFunc, copyText = oldNow, oldCopy })
	return c
}

func (c *cli) runWithInput(stdin string, args ...string) (string, string, error) {
	c.t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--data-dir", c.dataDir}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	out, _, err := c.runWithInput("", args...)
	return out, err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "shiftpay %s", strings.Join(args, " "))
	return out
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "shiftpay", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"clock", "shift", "stats", "report", "import", "settings", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("version"), "shiftpay dev (commit none, built unknown)")
}

func TestClockCommands(t *testing.T) {
	c := newCLI(t)

	assert.Equal(t, "Not clocked in.\n", c.mustRun("clock", "status"))
	assert.Equal(t, "Clocked in at 09:00 on Wed, Mar 4.\n", c.mustRun("clock", "in"))

	_, err := c.run("clock", "in")
	assert.ErrorIs(t, err, tracker.ErrClockRunning)

	c.now = c.now.Add(90 * time.Minute)
	assert.Contains(t, c.mustRun("clock", "status"), "Elapsed: 01:30:00")

	assert.Equal(t, "Clock-in moved to Wed, Mar 4 08:30.\n", c.mustRun("clock", "edit", "--time", "8:30"))

	c.now = time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "Clocked out. Saved Wed, Mar 4 08:30 - 17:00 (8.50h).\n", c.mustRun("clock", "out"))

	_, err = c.run("clock", "out")
	assert.ErrorIs(t, err, tracker.ErrNoActiveClock)
	_, err = c.run("clock", "edit", "--time", "08:00")
	assert.ErrorIs(t, err, tracker.ErrNoActiveClock)
}

func TestShiftCommands(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("shift", "add", "--date", "2026-03-02", "--start", "8:00", "--end", "16:00")
	require.True(t, strings.HasPrefix(out, "Added shift "))
	assert.Contains(t, out, "Mon, Mar 2 08:00 - 16:00 (8.00h)")
	id := strings.TrimSuffix(strings.Fields(out)[2], ":")

	_, err := c.run("shift", "add", "--date", "2026-03-02", "--start", "15:00", "--end", "18:00")
	assert.ErrorIs(t, err, tracker.ErrShiftOverlap)
	assert.Equal(t, "This shift overlaps with an existing entry.", tracker.UserMessage(err))

	_, err = c.run("shift", "add", "--date", "2026-03-03", "--start", "8:00")
	assert.ErrorIs(t, err, tracker.ErrMissingFields)

	_, err = c.run("shift", "add", "--date", "03/02/2026", "--start", "8:00", "--end", "9:00")
	assert.ErrorContains(t, err, "invalid --date")

	list := c.mustRun("shift", "list")
	assert.Contains(t, list, "Week of Mar 1 - Mar 7, 2026")
	assert.Contains(t, list, "Mon, Mar 2")
	assert.Contains(t, list, id)

	assert.Contains(t, c.mustRun("shift", "list", "--date", "2026-03-10"), "No shifts recorded.")

	assert.Contains(t, c.mustRun("shift", "edit", id, "--end", "17:00"), "Mon, Mar 2 08:00 - 17:00 (9.00h)")

	_, err = c.run("shift", "edit", "missing", "--end", "17:00")
	assert.ErrorIs(t, err, tracker.ErrShiftNotFound)

	assert.Equal(t, "Deleted shift "+id+".\n", c.mustRun("shift", "delete", id))
	assert.Contains(t, c.mustRun("shift", "list", "--all"), "No shifts recorded.")
}

func addWeek(c *cli) {
	for _, day := range []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06"} {
		c.mustRun("shift", "add", "--date", day, "--start", "08:00", "--end", "16:00")
	}
}

func TestStats(t *testing.T) {
	c := newCLI(t)
	c.mustRun("settings", "set", "hourly_rate=25")
	addWeek(c)

	out := c.mustRun("stats")
	assert.Contains(t, out, "Week: Mar 1 - Mar 7, 2026")
	assert.Contains(t, out, "40.00h")
	assert.Contains(t, out, "$1000.00")
	assert.Contains(t, out, "$80.80")
	assert.Contains(t, out, "State Tax (GA)")
	assert.Contains(t, out, "$42.23")
	assert.Contains(t, out, "$76.50")
	assert.Contains(t, out, "$800.47")

	c.mustRun("settings", "set", "tax_settings.is_1099=true", "min_weekly_guarantee=1200")
	out = c.mustRun("stats")
	assert.Contains(t, out, "1099 contractor")
	assert.Contains(t, out, "$1200.00 *")
	assert.Contains(t, out, "Weekly minimum guarantee of $1200.00 applied.")
}

func TestReport(t *testing.T) {
	c := newCLI(t)
	c.mustRun("shift", "add", "--date", "2026-03-02", "--start", "08:00", "--end", "16:00")
	c.mustRun("shift", "add", "--date", "2026-03-03", "--start", "22:00", "--end", "02:30")

	assert.Equal(t,
		"Mon, Mar 2: 08:00 - 16:00 (8.00h)\nTue, Mar 3: 22:00 - 02:30 (4.50h)\n\nTotal Hours: 12.50h\n",
		c.mustRun("report"))

	assert.Contains(t, c.mustRun("report", "--detailed"), "--- Summary ---")

	c.mustRun("report", "--copy")
	require.Len(t, c.copied, 1)
	assert.True(t, strings.HasSuffix(c.copied[0], "Total Hours: 12.50h"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("report", "--format", "json")), &doc))
	assert.Contains(t, doc, "stats")

	assert.Contains(t, c.mustRun("report", "-f", "csv"), "Date,Day,Start,End,Hours,Status")

	_, err := c.run("report", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown report format")
}

func TestReport_Save(t *testing.T) {
	c := newCLI(t)
	c.mustRun("shift", "add", "--date", "2026-03-02", "--start", "08:00", "--end", "16:00")

	_, stderr, err := c.runWithInput("", "report", "--format", "html", "--save")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved shiftpay_report_20260304_090000.html\n")

	data, err := os.ReadFile("shiftpay_report_20260304_090000.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestImport(t *testing.T) {
	c := newCLI(t)
	input := "Mon, Mar 2: 08:00 - 12:00 (4.00h)\nnot a shift\n2026-03-03,9:00,1700\n"

	out, stderr, err := c.runWithInput(input, "import")
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 shifts.\n", out)
	assert.Contains(t, stderr, "Detected 2 shifts. Skipped 1 lines.")

	list := c.mustRun("shift", "list")
	assert.Contains(t, list, "Mon, Mar 2")
	assert.Contains(t, list, "09:00 - 17:00")
}

func TestImport_FileWithColumnMap(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(t.TempDir(), "export.tsv")
	require.NoError(t, os.WriteFile(path, []byte("0700\t1530\t2026-03-05\n"), 0o600))

	out := c.mustRun("import", path, "--separator", "tab", "--columns", "start,end,date")
	assert.Equal(t, "Imported 1 shifts.\n", out)
	assert.Contains(t, c.mustRun("shift", "list"), "07:00 - 15:30")

	// Without an end column nothing can be read.
	_, stderr, err := c.runWithInput("", "import", path, "--separator", "tab", "--columns", "start,ignore,date")
	require.NoError(t, err)
	assert.Contains(t, stderr, "No shifts detected")

	_, err = c.run("import", path, "--columns", "ignore,date,start,end")
	assert.ErrorContains(t, err, "more than 3 entries")
}

func TestImport_BadOptions(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("import", "--separator", "pipe")
	assert.ErrorContains(t, err, "unknown separator")
	_, err = c.run("import", "--columns", "date,start,finish")
	assert.ErrorContains(t, err, "unknown column")
	_, err = c.run("import", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open")
}

func TestSettingsCommands(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("settings", "show")
	assert.Contains(t, out, "hourly_rate:")
	assert.Contains(t, out, "state_code: GA")

	assert.Equal(t, "Updated 2 setting(s).\n", c.mustRun("settings", "set", "company_name=Acme", "tax_settings.state_code=ny"))
	out = c.mustRun("settings", "show", "--format", "json")
	assert.Contains(t, out, `"companyName": "Acme"`)
	assert.Contains(t, out, `"stateCode": "NY"`)
	assert.Contains(t, out, `"overtimeThreshold": 40`)

	asJSON := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(asJSON, []byte(out), 0o600))
	c.mustRun("settings", "set", "company_name=Other", "hourly_rate=31")
	c.mustRun("settings", "import", asJSON)
	out = c.mustRun("settings", "show")
	assert.Contains(t, out, "company_name: Acme", "json export imports back unchanged")
	assert.Contains(t, out, "state_code: NY")

	typo := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("hourly_rat: 30\n"), 0o600))
	_, err := c.run("settings", "import", typo)
	assert.ErrorContains(t, err, "field hourly_rat not found")
	assert.Contains(t, c.mustRun("settings", "show"), "company_name: Acme", "a rejected import keeps the settings")

	_, err = c.run("settings", "set", "overtime_multiplier=0.5")
	assert.ErrorContains(t, err, "overtime_multiplier must be at least 1")

	exported := filepath.Join(t.TempDir(), "settings.yaml")
	c.mustRun("settings", "export", exported)
	assert.FileExists(t, exported)

	imported := filepath.Join(t.TempDir(), "new.yaml")
	require.NoError(t, os.WriteFile(imported, []byte("hourly_rate: 30\ntax_settings:\n  filing_status: mfj\n"), 0o600))
	c.mustRun("settings", "import", imported)
	out = c.mustRun("settings", "show")
	assert.Contains(t, out, "filing_status: mfj")
	assert.NotContains(t, out, "Acme", "import replaces the settings")

	_, err = c.run("settings", "show", "--format", "toml")
	assert.ErrorContains(t, err, "unknown settings format")
}

func TestSQLiteBackend(t *testing.T) {
	c := newCLI(t)
	c.mustRun("--backend", "sqlite", "shift", "add", "--date", "2026-03-02", "--start", "08:00", "--end", "16:00")

	assert.Contains(t, c.mustRun("--backend", "sqlite", "shift", "list"), "Mon, Mar 2")
	assert.Contains(t, c.mustRun("shift", "list"), "No shifts recorded.", "the file backend is separate")
	assert.FileExists(t, filepath.Join(c.dataDir, "shiftpay.db"))
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
