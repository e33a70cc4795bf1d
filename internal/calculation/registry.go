package calculation

import (
	_ "embed"
	"fmt"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/tax_tables_2026.yaml
var defaultTaxTablesYAML []byte

// StateTreatmentKind is how a jurisdiction's withholding is computed. Every
// StateCode resolves to exactly one kind.
type StateTreatmentKind int

const (
	// TreatmentNone withholds nothing: NONE or a state without wage income tax.
	TreatmentNone StateTreatmentKind = iota
	// TreatmentCustomRate applies the user's percentage to weekly gross.
	TreatmentCustomRate
	// TreatmentProgressive uses a deduction and bracket table like federal.
	TreatmentProgressive
	// TreatmentFlat applies a flat rate to annual gross.
	TreatmentFlat
	// TreatmentEstimate applies the fallback rate to annual gross. This is an
	// approximation for jurisdictions without data on file.
	TreatmentEstimate
)

func (k StateTreatmentKind) String() string {
	switch k {
	case TreatmentNone:
		return "none"
	case TreatmentCustomRate:
		return "custom"
	case TreatmentProgressive:
		return "progressive"
	case TreatmentFlat:
		return "flat"
	case TreatmentEstimate:
		return "estimate"
	}
	return fmt.Sprintf("StateTreatmentKind(%d)", int(k))
}

// StateTreatment is the resolved withholding rule for one state code.
type StateTreatment struct {
	Kind              StateTreatmentKind
	StandardDeduction domain.ByFilingStatus[decimal.Decimal]
	Brackets          domain.ByFilingStatus[domain.BracketTable]
	Rate              decimal.Decimal // TreatmentFlat and TreatmentEstimate
}

// FederalTable holds the nationwide deduction and brackets.
type FederalTable struct {
	StandardDeduction domain.ByFilingStatus[decimal.Decimal]      `yaml:"standard_deduction"`
	Brackets          domain.ByFilingStatus[domain.BracketTable] `yaml:"brackets"`
}

type stateEntry struct {
	Treatment         string                                     `yaml:"treatment"`
	Rate              decimal.Decimal                            `yaml:"rate"`
	StandardDeduction domain.ByFilingStatus[decimal.Decimal]      `yaml:"standard_deduction"`
	Brackets          domain.ByFilingStatus[domain.BracketTable] `yaml:"brackets"`
}

type taxTablesFile struct {
	Year              int                              `yaml:"year"`
	FallbackStateRate decimal.Decimal                  `yaml:"fallback_state_rate"`
	Federal           FederalTable                     `yaml:"federal"`
	States            map[domain.StateCode]stateEntry `yaml:"states"`
}

// TaxTableRegistry is the static reference data the calculators read. It is
// immutable after load.
type TaxTableRegistry struct {
	Year              int
	Federal           FederalTable
	FallbackStateRate decimal.Decimal
	states            map[domain.StateCode]StateTreatment
}

// LoadTaxTableRegistry parses and validates a tax table document.
func LoadTaxTableRegistry(data []byte) (*TaxTableRegistry, error) {
	var file taxTablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tax tables: %w", err)
	}

	if err := validateByStatus("federal", file.Federal.Brackets); err != nil {
		return nil, err
	}
	if file.FallbackStateRate.IsNegative() {
		return nil, fmt.Errorf("fallback state rate cannot be negative")
	}

	reg := &TaxTableRegistry{
		Year:              file.Year,
		Federal:           file.Federal,
		FallbackStateRate: file.FallbackStateRate,
		states:            make(map[domain.StateCode]StateTreatment, len(file.States)),
	}

	for code, entry := range file.States {
		if !code.IsJurisdiction() {
			return nil, fmt.Errorf("tax tables reference unknown jurisdiction %q", code)
		}
		st := StateTreatment{
			StandardDeduction: entry.StandardDeduction,
			Brackets:          entry.Brackets,
			Rate:              entry.Rate,
		}
		switch entry.Treatment {
		case "no_income_tax":
			st.Kind = TreatmentNone
		case "flat":
			if entry.Rate.IsNegative() {
				return nil, fmt.Errorf("state %s: flat rate cannot be negative", code)
			}
			st.Kind = TreatmentFlat
		case "progressive":
			if err := validateByStatus(string(code), entry.Brackets); err != nil {
				return nil, err
			}
			st.Kind = TreatmentProgressive
		default:
			return nil, fmt.Errorf("state %s: unknown treatment %q", code, entry.Treatment)
		}
		reg.states[code] = st
	}

	return reg, nil
}

func validateByStatus(name string, tables domain.ByFilingStatus[domain.BracketTable]) error {
	for _, fs := range domain.FilingStatuses {
		if err := tables.For(fs).Validate(); err != nil {
			return fmt.Errorf("%s brackets for %s: %w", name, fs, err)
		}
	}
	return nil
}

// DefaultTaxTableRegistry returns the registry built from the embedded tables.
// The embedded document is validated by tests, so a failure here is a build defect.
func DefaultTaxTableRegistry() *TaxTableRegistry {
	reg, err := LoadTaxTableRegistry(defaultTaxTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded tax tables are invalid: %v", err))
	}
	return reg
}

// Resolve returns the withholding rule for a state code, in priority order:
// NONE and no-income-tax states, CUSTOM, a full table, a flat rate, and
// finally the fallback estimate for anything not on file.
func (r *TaxTableRegistry) Resolve(code domain.StateCode) StateTreatment {
	switch code {
	case domain.StateNone:
		return StateTreatment{Kind: TreatmentNone}
	case domain.StateCustom:
		return StateTreatment{Kind: TreatmentCustomRate}
	}
	if st, ok := r.states[code]; ok {
		return st
	}
	return StateTreatment{Kind: TreatmentEstimate, Rate: r.FallbackStateRate}
}

// FederalStandardDeduction returns the federal standard deduction for fs.
func (r *TaxTableRegistry) FederalStandardDeduction(fs domain.FilingStatus) decimal.Decimal {
	return r.Federal.StandardDeduction.For(fs)
}

// FederalBrackets returns the federal bracket table for fs.
func (r *TaxTableRegistry) FederalBrackets(fs domain.FilingStatus) domain.BracketTable {
	return r.Federal.Brackets.For(fs)
}
