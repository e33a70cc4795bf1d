package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Stored and exported JSON carries amounts as numbers, the way the
	// browser version of the tracker wrote them.
	decimal.MarshalJSONWithoutQuotes = true
}

// FilingStatus is the federal filing status used to pick deductions and brackets.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "mfj"
	FilingHeadOfHousehold   FilingStatus = "hoh"
	FilingMarriedSeparately FilingStatus = "mfs"
)

// FilingStatuses lists every supported filing status.
var FilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJointly,
	FilingMarriedSeparately,
	FilingHeadOfHousehold,
}

// Valid reports whether fs is a known filing status.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly, FilingHeadOfHousehold, FilingMarriedSeparately:
		return true
	}
	return false
}

// Label returns the human readable name of the filing status.
func (fs FilingStatus) Label() string {
	switch fs {
	case FilingSingle:
		return "Single"
	case FilingMarriedJointly:
		return "Married Filing Jointly"
	case FilingMarriedSeparately:
		return "Married Filing Separately"
	case FilingHeadOfHousehold:
		return "Head of Household"
	}
	return string(fs)
}

// TaxProfile holds the withholding configuration.
type TaxProfile struct {
	FilingStatus          FilingStatus    `json:"filingStatus" yaml:"filing_status" validate:"filingstatus"`
	StateCode             StateCode       `json:"stateCode" yaml:"state_code" validate:"statecode"`
	StateTaxRate          decimal.Decimal `json:"stateTaxRate" yaml:"state_tax_rate" validate:"gte=0,lte=100"` // percent, CUSTOM only
	UseStandardDeduction  bool            `json:"useStandardDeduction" yaml:"use_standard_deduction"`
	CustomDeduction       decimal.Decimal `json:"customDeduction" yaml:"custom_deduction" validate:"gte=0"`
	IncludeFICA           bool            `json:"includeFica" yaml:"include_fica"`
	AdditionalWithholding decimal.Decimal `json:"additionalWithholding" yaml:"additional_withholding" validate:"gte=0"` // weekly
	Is1099                bool            `json:"is1099" yaml:"is_1099"`
}

// Settings is the single settings record read on every stats computation.
type Settings struct {
	CompanyName        string          `json:"companyName" yaml:"company_name"`
	HourlyRate         decimal.Decimal `json:"hourlyRate" yaml:"hourly_rate" validate:"gte=0"`
	OvertimeThreshold  decimal.Decimal `json:"overtimeThreshold" yaml:"overtime_threshold" validate:"gte=0"` // hours per week
	OvertimeMultiplier decimal.Decimal `json:"overtimeMultiplier" yaml:"overtime_multiplier" validate:"gte=1"`
	MinWeeklyGuarantee decimal.Decimal `json:"minWeeklyGuarantee" yaml:"min_weekly_guarantee" validate:"gte=0"`
	WeekStartDay       int             `json:"weekStartDay" yaml:"week_start_day" validate:"gte=0,lte=6"` // 0 = Sunday
	TaxSettings        TaxProfile      `json:"taxSettings" yaml:"tax_settings"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:         decimal.Zero,
		OvertimeThreshold:  decimal.NewFromInt(40),
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
		MinWeeklyGuarantee: decimal.Zero,
		WeekStartDay:       0,
		TaxSettings: TaxProfile{
			FilingStatus:          FilingSingle,
			StateCode:             StateGA,
			StateTaxRate:          decimal.RequireFromString("5.49"),
			UseStandardDeduction:  true,
			CustomDeduction:       decimal.Zero,
			IncludeFICA:           true,
			AdditionalWithholding: decimal.Zero,
			Is1099:                false,
		},
	}
}
