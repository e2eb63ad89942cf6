package canamort

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// 入参边界，来自产品校验口径
var (
	minLoanAmount = decimal.NewFromInt(1_000)
	maxLoanAmount = decimal.NewFromInt(100_000_000)
	minRate       = decimal.NewFromFloat(0.01)
	maxRate       = decimal.NewFromInt(50)
)

const (
	minMonths    = 1
	maxMonths    = 600
	minFrequency = 1
	maxFrequency = 365
)

// Validate 引擎运行前的完整入参校验。引擎自身信任调用方，
// 不重复校验，未校验的入参可能产生退化结果
func (in LoanInput) Validate() error {
	if in.LoanAmount.LessThan(minLoanAmount) || in.LoanAmount.GreaterThan(maxLoanAmount) {
		return fmt.Errorf("loan_amount %s: %w", in.LoanAmount, ErrLoanAmountRange)
	}
	if in.AnnualInterestRate.LessThan(minRate) || in.AnnualInterestRate.GreaterThan(maxRate) {
		return fmt.Errorf("annual_interest_rate %s: %w", in.AnnualInterestRate, ErrInterestRateRange)
	}
	if err := validateIntRange(in.RateTermMonths, minMonths, maxMonths, ErrRateTermRange); err != nil {
		return err
	}
	if err := validateIntRange(in.AmortizationMonths, minMonths, maxMonths, ErrAmortizationRange); err != nil {
		return err
	}
	if err := validateIntRange(in.PaymentsPerYear, minFrequency, maxFrequency, ErrPaymentFreqRange); err != nil {
		return err
	}
	if err := validateIntRange(in.CompoundingFrequency, minFrequency, maxFrequency, ErrCompoundFreqRange); err != nil {
		return err
	}
	if CompareDate(in.FirstPaymentDate, in.StartDate) < 0 {
		return ErrFirstPaymentBefore
	}
	if CompareDate(in.RateTermMaturityDate, in.StartDate) <= 0 {
		return ErrMaturityNotAfter
	}
	return nil
}

func validateIntRange(value, minInclusive, maxInclusive int, sentinel error) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("value %d: %w", value, sentinel)
	}
	return nil
}
