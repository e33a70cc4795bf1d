package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one marginal bracket. A nil UpTo marks the unbounded top bracket.
type TaxBracket struct {
	UpTo *decimal.Decimal `yaml:"up_to,omitempty" json:"upTo,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit.
func (b TaxBracket) Unbounded() bool {
	return b.UpTo == nil
}

// BracketTable is an ascending list of brackets ending in an unbounded one.
type BracketTable []TaxBracket

// Validate checks that the table is contiguous and exhaustive: upper bounds
// strictly increase and only the last bracket is unbounded.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	prev := decimal.Zero
	for i, b := range t {
		if b.Rate.LessThan(decimal.Zero) {
			return fmt.Errorf("bracket %d has negative rate %s", i, b.Rate)
		}
		last := i == len(t)-1
		if b.Unbounded() {
			if !last {
				return fmt.Errorf("bracket %d is unbounded but is not the last bracket", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("last bracket must be unbounded, got upper bound %s", b.UpTo)
		}
		if !b.UpTo.GreaterThan(prev) {
			return fmt.Errorf("bracket %d upper bound %s does not exceed %s", i, b.UpTo, prev)
		}
		prev = *b.UpTo
	}
	return nil
}

// ByFilingStatus holds one value per filing status.
type ByFilingStatus[T any] struct {
	Single                  T `yaml:"single" json:"single"`
	MarriedFilingJointly    T `yaml:"mfj" json:"mfj"`
	HeadOfHousehold         T `yaml:"hoh" json:"hoh"`
	MarriedFilingSeparately T `yaml:"mfs" json:"mfs"`
}

// For returns the value for the given status. Unknown statuses fall back to single.
func (b ByFilingStatus[T]) For(fs FilingStatus) T {
	switch fs {
	case FilingMarriedJointly:
		return b.MarriedFilingJointly
	case FilingHeadOfHousehold:
		return b.HeadOfHousehold
	case FilingMarriedSeparately:
		return b.MarriedFilingSeparately
	default:
		return b.Single
	}
}

// ShiftStats is the derived weekly result. It is rebuilt from scratch on
// every computation.
type ShiftStats struct {
	TotalHours          decimal.Decimal `json:"totalHours"`
	RegularHours        decimal.Decimal `json:"regularHours"`
	OvertimeHours       decimal.Decimal `json:"overtimeHours"`
	GrossPay            decimal.Decimal `json:"grossPay"`
	RegularPay          decimal.Decimal `json:"regularPay"`
	OvertimePay         decimal.Decimal `json:"overtimePay"`
	EstimatedFederalTax decimal.Decimal `json:"estimatedFederalTax"`
	EstimatedStateTax   decimal.Decimal `json:"estimatedStateTax"`
	EstimatedFICA       decimal.Decimal `json:"estimatedFICA"`
	NetPay              decimal.Decimal `json:"netPay"`
	GuaranteeApplied    bool            `json:"guaranteeApplied"`
}

// TotalWithholding sums every estimated deduction except the additional
// withholding, which only Settings knows about.
func (s ShiftStats) TotalWithholding() decimal.Decimal {
	return s.EstimatedFederalTax.Add(s.EstimatedStateTax).Add(s.EstimatedFICA)
}
