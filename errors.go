package canamort

import (
	"errors"
)

var (
	ErrLoanAmountRange    = errors.New("loan amount must be between 1,000 and 100,000,000")
	ErrInterestRateRange  = errors.New("annual interest rate must be between 0.01 and 50")
	ErrRateTermRange      = errors.New("rate term months must be between 1 and 600")
	ErrAmortizationRange  = errors.New("amortization months must be between 1 and 600")
	ErrPaymentFreqRange   = errors.New("payments per year must be between 1 and 365")
	ErrCompoundFreqRange  = errors.New("compounding frequency must be between 1 and 365")
	ErrFirstPaymentBefore = errors.New("first payment date must not precede start date")
	ErrMaturityNotAfter   = errors.New("rate term maturity date must follow start date")
	ErrNoPeriods          = errors.New("derived total payment count is not positive")
	ErrRateNotFinite      = errors.New("derived effective rate is not finite")
)
