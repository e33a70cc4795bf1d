package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSettingsParser_LoadFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml", `
company_name: Acme Diner
hourly_rate: 18.50
min_weekly_guarantee: 400
week_start_day: 1
tax_settings:
  filing_status: hoh
  state_code: ca
  additional_withholding: 10
`)

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme Diner", settings.CompanyName)
	assert.True(t, settings.HourlyRate.Equal(decimal.RequireFromString("18.5")))
	assert.True(t, settings.MinWeeklyGuarantee.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 1, settings.WeekStartDay)
	assert.Equal(t, domain.FilingHeadOfHousehold, settings.TaxSettings.FilingStatus)
	assert.Equal(t, domain.StateCA, settings.TaxSettings.StateCode, "state code is upper-cased")

	// Untouched fields keep defaults.
	assert.True(t, settings.OvertimeThreshold.Equal(decimal.NewFromInt(40)))
	assert.True(t, settings.OvertimeMultiplier.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, settings.TaxSettings.IncludeFICA)
}

func TestSettingsParser_MissingFile(t *testing.T) {
	_, err := NewSettingsParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestSettingsParser_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"negative rate", "hourly_rate: -1", "hourly_rate must be at least 0"},
		{"multiplier below one", "overtime_multiplier: 0.5", "overtime_multiplier must be at least 1"},
		{"week start out of range", "week_start_day: 7", "week_start_day must be at most 6"},
		{"unknown filing status", "tax_settings: {filing_status: widowed}", "is not a filing status"},
		{"unknown state", "tax_settings: {state_code: ZZ}", "tax_settings.state_code \"ZZ\" is not a state code"},
		{"custom rate over 100", "tax_settings: {state_code: CUSTOM, state_tax_rate: 150}", "state_tax_rate must be at most 100"},
		{"bad yaml", "hourly_rate: [", "failed to parse YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSettingsParser().Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSettingsParser_JSON(t *testing.T) {
	doc := `{"hourlyRate": 30, "companyName": "Acme", "taxSettings": {"stateCode": "ny", "is1099": true}}`

	settings, err := NewSettingsParser().Parse([]byte(doc))
	require.NoError(t, err)

	assert.True(t, settings.HourlyRate.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Acme", settings.CompanyName)
	assert.Equal(t, domain.StateNY, settings.TaxSettings.StateCode)
	assert.True(t, settings.TaxSettings.Is1099)
	assert.Equal(t, domain.FilingSingle, settings.TaxSettings.FilingStatus, "missing field keeps default")
}

func TestSettingsParser_UnknownKeyRejected(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"yaml typo", "hourly_rat: 30", "failed to parse YAML"},
		{"nested yaml typo", "tax_settings:\n  state: NY", "failed to parse YAML"},
		{"camelCase keys in yaml", "hourlyRate: 30", "failed to parse YAML"},
		{"json typo", `{"hourlyRat": 30}`, "failed to parse JSON"},
		{"snake_case keys in json", `{"hourly_rate": 30}`, "failed to parse JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSettingsParser().Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSettingsParser_EmptyDocumentIsDefaults(t *testing.T) {
	settings, err := NewSettingsParser().Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsParser_DefaultsAreValid(t *testing.T) {
	s := domain.DefaultSettings()
	assert.NoError(t, NewSettingsParser().ValidateSettings(&s))
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	original := domain.DefaultSettings()
	original.CompanyName = "Night Shift LLC"
	original.HourlyRate = decimal.RequireFromString("27.25")
	original.TaxSettings.StateCode = domain.StateNY

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SaveToFile(original, path))

	loaded, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.CompanyName, loaded.CompanyName)
	assert.True(t, original.HourlyRate.Equal(loaded.HourlyRate))
	assert.Equal(t, domain.StateNY, loaded.TaxSettings.StateCode)
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir(), cfg.DataDir)
	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadAppConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "shiftpay.yaml", "data_dir: /tmp/shiftpay-data\nbackend: sqlite\nlog_level: info\n")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shiftpay-data", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)

	t.Setenv("SHIFTPAY_LOG_LEVEL", "DEBUG")
	cfg, err = LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "environment overrides the file")
}

func TestLoadAppConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "SHIFTPAY_BACKEND=sqlite\n")
	// godotenv sets real environment variables; make sure they are restored.
	t.Setenv("SHIFTPAY_BACKEND", "")
	require.NoError(t, os.Unsetenv("SHIFTPAY_BACKEND"))

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("SHIFTPAY_BACKEND", "postgres")
	_, err := LoadAppConfig("")
	assert.ErrorContains(t, err, "backend must be one of: file sqlite")

	_, err = LoadAppConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestApplyOverrides(t *testing.T) {
	base := domain.DefaultSettings()
	base.CompanyName = "Acme"

	got, err := NewSettingsParser().ApplyOverrides(base, []string{
		"hourly_rate=22.75",
		"week_start_day=1",
		"tax_settings.state_code=tx",
		"tax_settings.include_fica=false",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", got.CompanyName, "untouched fields are kept")
	assert.True(t, got.HourlyRate.Equal(decimal.RequireFromString("22.75")))
	assert.Equal(t, 1, got.WeekStartDay)
	assert.Equal(t, domain.StateTX, got.TaxSettings.StateCode)
	assert.False(t, got.TaxSettings.IncludeFICA)
	assert.True(t, got.TaxSettings.StateTaxRate.Equal(decimal.RequireFromString("5.49")))
}

func TestApplyOverrides_Errors(t *testing.T) {
	tests := []struct {
		pair string
		msg  string
	}{
		{"hourly_rate", "want key=value"},
		{"wage=10", `unknown setting "wage"`},
		{"hourly_rate.cents=10", `unknown setting "hourly_rate.cents"`},
		{"tax_settings=x", "is a section"},
		{"overtime_multiplier=0.5", "overtime_multiplier must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.pair, func(t *testing.T) {
			_, err := NewSettingsParser().ApplyOverrides(domain.DefaultSettings(), []string{tt.pair})
			assert.ErrorContains(t, err, tt.msg)
		})
	}
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
