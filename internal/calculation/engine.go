package calculation

import (
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine turns a week of shifts into pay and withholding estimates.
type CalculationEngine struct {
	TaxCalc *ComprehensiveTaxCalculator
	Logger  Logger
}

// NewCalculationEngine creates a new calculation engine over the embedded tax tables
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewComprehensiveTaxCalculator(),
		Logger:  NopLogger{},
	}
}

// NewCalculationEngineWithTables creates an engine over custom tax tables.
func NewCalculationEngineWithTables(tables *TaxTableRegistry) *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewComprehensiveTaxCalculatorWithTables(tables),
		Logger:  NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CalculateWeeklyStats aggregates the given shifts (already filtered to one
// week, possibly including the synthetic in-progress shift) into ShiftStats.
// It is pure: the same inputs always produce the same output.
func (ce *CalculationEngine) CalculateWeeklyStats(shifts []domain.Shift, settings domain.Settings) domain.ShiftStats {
	var stats domain.ShiftStats

	// Hours
	totalHours := decimal.Zero
	for _, s := range shifts {
		totalHours = totalHours.Add(ShiftHours(s))
	}
	stats.TotalHours = totalHours

	threshold := settings.OvertimeThreshold
	stats.RegularHours = decimal.Min(totalHours, threshold)
	stats.OvertimeHours = decimal.Max(decimal.Zero, totalHours.Sub(threshold))

	// Pay
	overtimeRate := settings.HourlyRate.Mul(settings.OvertimeMultiplier)
	stats.RegularPay = stats.RegularHours.Mul(settings.HourlyRate)
	stats.OvertimePay = stats.OvertimeHours.Mul(overtimeRate)
	grossPay := stats.RegularPay.Add(stats.OvertimePay)

	if len(shifts) > 0 && settings.MinWeeklyGuarantee.GreaterThan(grossPay) {
		ce.Logger.Debugf("minimum weekly guarantee %s replaces gross %s", settings.MinWeeklyGuarantee, grossPay)
		grossPay = settings.MinWeeklyGuarantee
		stats.GuaranteeApplied = true
	}
	stats.GrossPay = grossPay

	profile := settings.TaxSettings
	if profile.Is1099 {
		ce.Logger.Debugf("contractor profile: no withholding estimated")
		stats.EstimatedFederalTax = decimal.Zero
		stats.EstimatedStateTax = decimal.Zero
		stats.EstimatedFICA = decimal.Zero
		stats.NetPay = grossPay
		return stats
	}

	// Taxes
	annualGross := grossPay.Mul(WeeksPerYear)

	stats.EstimatedFederalTax = ce.TaxCalc.FederalTaxCalc.CalculateWeeklyTax(annualGross, profile)

	stateTax, kind := ce.TaxCalc.StateTaxCalc.CalculateWeeklyTax(grossPay, annualGross, profile)
	if kind == TreatmentEstimate {
		ce.Logger.Debugf("no tax table on file for %s, using %s estimate", profile.StateCode, ce.TaxCalc.Tables.FallbackStateRate)
	}
	stats.EstimatedStateTax = stateTax

	stats.EstimatedFICA = decimal.Zero
	if profile.IncludeFICA {
		stats.EstimatedFICA = ce.TaxCalc.FICATaxCalc.CalculateWeeklyFICA(grossPay)
	}

	totalDeductions := stats.TotalWithholding().Add(profile.AdditionalWithholding)
	stats.NetPay = grossPay.Sub(totalDeductions)

	ce.Logger.Debugf("week: %sh gross=%s fed=%s state=%s fica=%s net=%s",
		totalHours.StringFixed(2), grossPay.StringFixed(2),
		stats.EstimatedFederalTax.StringFixed(2), stats.EstimatedStateTax.StringFixed(2),
		stats.EstimatedFICA.StringFixed(2), stats.NetPay.StringFixed(2))

	return stats
}
