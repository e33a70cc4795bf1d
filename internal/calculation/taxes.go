package calculation

import (
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATION ASSUMPTIONS:
//
// 1. Weekly pay is annualized as gross x 52. The 52.14-week calendar year is
//    ignored on purpose so estimates stay consistent week to week.
//
// 2. Federal: one nationwide deduction + bracket table per filing status,
//    2026 projections, no inflation indexing.
//
// 3. State: resolved per jurisdiction by TaxTableRegistry.Resolve. Unmapped
//    jurisdictions use a 4% flat estimate on annual gross.
//
// 4. FICA: 6.2% Social Security + 1.45% Medicare on weekly gross. The SS wage
//    base cap and the additional Medicare surtax are not modeled.

// WeeksPerYear is the fixed annualization factor.
var WeeksPerYear = decimal.NewFromInt(52)

var hundred = decimal.NewFromInt(100)

// ProgressiveTax applies a marginal bracket table to a taxable amount. Only the
// slice of income inside each bracket is taxed at that bracket's rate.
func ProgressiveTax(taxable decimal.Decimal, brackets domain.BracketTable) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	tax := decimal.Zero
	previousLimit := decimal.Zero
	for _, bracket := range brackets {
		if bracket.Unbounded() {
			tax = tax.Add(taxable.Sub(previousLimit).Mul(bracket.Rate))
			break
		}
		upper := *bracket.UpTo
		if taxable.GreaterThan(previousLimit) {
			incomeInBracket := decimal.Min(taxable, upper).Sub(previousLimit)
			tax = tax.Add(incomeInBracket.Mul(bracket.Rate))
		}
		previousLimit = upper
		if taxable.LessThanOrEqual(previousLimit) {
			break
		}
	}
	return tax
}

// deductionFor picks the standard deduction or, when the profile opts out,
// the custom deduction.
func deductionFor(profile domain.TaxProfile, standard domain.ByFilingStatus[decimal.Decimal]) decimal.Decimal {
	if profile.UseStandardDeduction {
		return standard.For(profile.FilingStatus)
	}
	return profile.CustomDeduction
}

// FederalTaxCalculator estimates weekly federal income tax withholding.
type FederalTaxCalculator struct {
	Tables *TaxTableRegistry
}

// NewFederalTaxCalculator creates a federal calculator over the given tables.
func NewFederalTaxCalculator(tables *TaxTableRegistry) *FederalTaxCalculator {
	return &FederalTaxCalculator{Tables: tables}
}

// CalculateWeeklyTax returns progressiveTax(max(0, annualGross - deduction)) / 52.
func (ftc *FederalTaxCalculator) CalculateWeeklyTax(annualGross decimal.Decimal, profile domain.TaxProfile) decimal.Decimal {
	deduction := deductionFor(profile, ftc.Tables.Federal.StandardDeduction)
	taxable := decimal.Max(decimal.Zero, annualGross.Sub(deduction))
	return ProgressiveTax(taxable, ftc.Tables.FederalBrackets(profile.FilingStatus)).Div(WeeksPerYear)
}

// StateTaxCalculator estimates weekly state income tax withholding.
type StateTaxCalculator struct {
	Tables *TaxTableRegistry
}

// NewStateTaxCalculator creates a state calculator over the given tables.
func NewStateTaxCalculator(tables *TaxTableRegistry) *StateTaxCalculator {
	return &StateTaxCalculator{Tables: tables}
}

// CalculateWeeklyTax returns the weekly state withholding and the treatment
// that produced it.
func (stc *StateTaxCalculator) CalculateWeeklyTax(grossPay, annualGross decimal.Decimal, profile domain.TaxProfile) (decimal.Decimal, StateTreatmentKind) {
	st := stc.Tables.Resolve(profile.StateCode)
	switch st.Kind {
	case TreatmentNone:
		return decimal.Zero, st.Kind
	case TreatmentCustomRate:
		return grossPay.Mul(profile.StateTaxRate.Div(hundred)), st.Kind
	case TreatmentProgressive:
		deduction := deductionFor(profile, st.StandardDeduction)
		taxable := decimal.Max(decimal.Zero, annualGross.Sub(deduction))
		return ProgressiveTax(taxable, st.Brackets.For(profile.FilingStatus)).Div(WeeksPerYear), st.Kind
	case TreatmentFlat, TreatmentEstimate:
		return annualGross.Mul(st.Rate).Div(WeeksPerYear), st.Kind
	default:
		panic("unhandled state treatment " + st.Kind.String())
	}
}

// FICACalculator handles FICA tax calculations
type FICACalculator struct {
	SSRate       decimal.Decimal
	MedicareRate decimal.Decimal
}

// NewFICACalculator2026 creates the employee-side FICA calculator (7.65% combined).
func NewFICACalculator2026() *FICACalculator {
	return &FICACalculator{
		SSRate:       decimal.RequireFromString("0.062"),
		MedicareRate: decimal.RequireFromString("0.0145"),
	}
}

// Rate returns the combined FICA rate.
func (fc *FICACalculator) Rate() decimal.Decimal {
	return fc.SSRate.Add(fc.MedicareRate)
}

// CalculateWeeklyFICA returns FICA on weekly wages.
func (fc *FICACalculator) CalculateWeeklyFICA(wages decimal.Decimal) decimal.Decimal {
	if wages.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return wages.Mul(fc.Rate())
}

// ComprehensiveTaxCalculator bundles the federal, state and FICA calculators.
type ComprehensiveTaxCalculator struct {
	Tables         *TaxTableRegistry
	FederalTaxCalc *FederalTaxCalculator
	StateTaxCalc   *StateTaxCalculator
	FICATaxCalc    *FICACalculator
}

// NewComprehensiveTaxCalculator creates a calculator over the embedded 2026 tables.
func NewComprehensiveTaxCalculator() *ComprehensiveTaxCalculator {
	return NewComprehensiveTaxCalculatorWithTables(DefaultTaxTableRegistry())
}

// NewComprehensiveTaxCalculatorWithTables creates a calculator over custom tables.
func NewComprehensiveTaxCalculatorWithTables(tables *TaxTableRegistry) *ComprehensiveTaxCalculator {
	return &ComprehensiveTaxCalculator{
		Tables:         tables,
		FederalTaxCalc: NewFederalTaxCalculator(tables),
		StateTaxCalc:   NewStateTaxCalculator(tables),
		FICATaxCalc:    NewFICACalculator2026(),
	}
}
