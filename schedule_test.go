package canamort

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceInput is the worked example: $500,000 at 5.25% over 25 years,
// monthly payments, Canadian semi-annual compounding.
func referenceInput() LoanInput {
	return LoanInput{
		LoanAmount:           decimal.NewFromInt(500_000),
		AnnualInterestRate:   decimal.NewFromFloat(5.25),
		RateTermMonths:       60,
		AmortizationMonths:   300,
		PaymentsPerYear:      FreqMonthly,
		CompoundingFrequency: CompoundSemiAnnual,
		StartDate:            date(2024, time.January, 15),
		FirstPaymentDate:     date(2024, time.February, 15),
		RateTermMaturityDate: date(2029, time.January, 15),
		PaymentType:          PaymentEnd,
	}
}

func TestTotalPaymentCount(t *testing.T) {
	assert.Equal(t, 300, TotalPaymentCount(300, 12))
	assert.Equal(t, 650, TotalPaymentCount(300, 26))
	assert.Equal(t, 15, TotalPaymentCount(7, 26)) // floor(7/12*26)
	assert.Equal(t, 0, TotalPaymentCount(0, 12))
}

func TestPaymentAmount_ZeroRate(t *testing.T) {
	principal := decimal.NewFromInt(120_000)
	got, err := PaymentAmount(principal, decimal.Zero, 12, FreqMonthly, CompoundSemiAnnual)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10_000)),
		"zero-rate payment must be exactly principal/n, got %s", got)
}

func TestPaymentAmount_Annuity(t *testing.T) {
	got, err := PaymentAmount(decimal.NewFromInt(500_000), decimal.NewFromFloat(5.25),
		300, FreqMonthly, CompoundSemiAnnual)
	require.NoError(t, err)
	// Known value for this rate/term combination.
	assert.InDelta(t, 2979.7, got.InexactFloat64(), 2.0)
}

func TestPaymentAmount_NoPeriods(t *testing.T) {
	_, err := PaymentAmount(decimal.NewFromInt(1000), decimal.NewFromInt(5), 0, 12, 2)
	assert.ErrorIs(t, err, ErrNoPeriods)
}

func TestBuildSchedule_ReferenceExample(t *testing.T) {
	res, err := BuildSchedule(referenceInput())
	require.NoError(t, err)
	require.NotEmpty(t, res.Schedule)

	first := res.Schedule[0]
	assert.Equal(t, 1, first.PaymentNumber)
	assert.True(t, first.BeginningBalance.Equal(decimal.NewFromInt(500_000)))
	// 2024-02-15 is a Thursday and stays unadjusted.
	assert.True(t, sameDate(first.PaymentDate, date(2024, time.February, 15)),
		"got %s", first.PaymentDate)
	assert.Equal(t, 31, first.DaysBetweenPayments)
	assert.True(t, first.ScheduledPayment.Equal(first.PrincipalPayment.Add(first.InterestPayment)))
}

func TestBuildSchedule_BalanceInvariants(t *testing.T) {
	res, err := BuildSchedule(referenceInput())
	require.NoError(t, err)

	prevEnding := decimal.NewFromInt(500_000)
	prevDate := time.Time{}
	for i, row := range res.Schedule {
		assert.Equal(t, i+1, row.PaymentNumber)
		assert.True(t, row.BeginningBalance.Equal(prevEnding),
			"row %d beginning balance must chain from previous ending", row.PaymentNumber)
		assert.True(t, row.EndingBalance.LessThanOrEqual(row.BeginningBalance),
			"row %d balance must not grow", row.PaymentNumber)
		assert.False(t, row.EndingBalance.IsNegative())
		if !prevDate.IsZero() {
			assert.True(t, CompareDate(prevDate, row.PaymentDate) <= 0,
				"payment dates must be non-decreasing")
		}
		prevEnding = row.EndingBalance
		prevDate = row.PaymentDate
	}

	last := res.Schedule[len(res.Schedule)-1]
	assert.True(t, last.EndingBalance.LessThanOrEqual(payoffEpsilon),
		"schedule must end paid off, got %s", last.EndingBalance)
}

func TestBuildSchedule_SummaryConsistency(t *testing.T) {
	res, err := BuildSchedule(referenceInput())
	require.NoError(t, err)

	last := res.Schedule[len(res.Schedule)-1]
	assert.True(t, res.Summary.TotalInterest.Equal(last.CumulativeInterest))
	assert.Equal(t, len(res.Schedule), res.Summary.NumberOfPayments)

	sum := decimal.Zero
	for _, row := range res.Schedule {
		sum = sum.Add(row.ScheduledPayment)
	}
	assert.True(t, res.Summary.TotalPaid.Equal(sum))

	// Rate-term totals only cover rows on or before the maturity date.
	termInterest := decimal.Zero
	termPrincipal := decimal.Zero
	for _, row := range res.Schedule {
		if CompareDate(row.PaymentDate, date(2029, time.January, 15)) <= 0 {
			termInterest = termInterest.Add(row.InterestPayment)
			termPrincipal = termPrincipal.Add(row.PrincipalPayment)
		}
	}
	assert.True(t, res.Summary.RateTermInterest.Equal(termInterest))
	assert.True(t, res.Summary.RateTermPrincipal.Equal(termPrincipal))
	assert.True(t, res.Summary.RateTermInterest.LessThan(res.Summary.TotalInterest))
}

func TestBuildSchedule_TerminatesAtOrBeforeConfiguredCount(t *testing.T) {
	in := referenceInput()
	in.PaymentsPerYear = FreqWeekly
	res, err := BuildSchedule(in)
	require.NoError(t, err)

	total := TotalPaymentCount(in.AmortizationMonths, in.PaymentsPerYear)
	assert.LessOrEqual(t, res.Summary.NumberOfPayments, total)
	last := res.Schedule[len(res.Schedule)-1]
	assert.True(t, last.EndingBalance.LessThanOrEqual(payoffEpsilon))
}

func TestBuildSchedule_NoPeriods(t *testing.T) {
	in := referenceInput()
	in.AmortizationMonths = 0
	_, err := BuildSchedule(in)
	assert.ErrorIs(t, err, ErrNoPeriods)
}

func TestBuildSchedule_AdjustmentChangesSplitNotPayment(t *testing.T) {
	res, err := BuildSchedule(referenceInput())
	require.NoError(t, err)

	// Every non-payoff row pays the same fixed amount regardless of how
	// business-day adjustment moved its date.
	payment := res.Summary.PeriodicPayment
	for _, row := range res.Schedule[:len(res.Schedule)-1] {
		if row.PrincipalPayment.Equal(row.BeginningBalance) {
			continue // forced payoff row
		}
		assert.True(t, row.ScheduledPayment.Equal(payment),
			"row %d scheduled payment drifted: %s vs %s",
			row.PaymentNumber, row.ScheduledPayment, payment)
	}
}
