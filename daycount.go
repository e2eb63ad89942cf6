package canamort

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const msPerDay = 86_400_000

// yearBasis Act/365.25 计息基准
var yearBasis = decimal.NewFromFloat(365.25)

var hundred = decimal.NewFromInt(100)

// -------------------- Actual day count --------------------

// DaysBetween returns the calendar days from start to end as
// ceil(diffMs / 86400000). The ceiling matters on DST-shortened days:
// a 23-hour day still counts as a full day. Negative spans floor at 0.
func DaysBetween(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(math.Ceil(float64(ms) / msPerDay))
}

// DailyRate converts a nominal annual percentage rate to a simple daily
// rate on the Act/365.25 basis.
func DailyRate(annualRate Decimal) Decimal {
	return annualRate.Div(hundred).Div(yearBasis)
}

// -------------------- Nominal to effective --------------------

// EffectiveRate 把名义年利率（百分数）折算为每期有效利率：
//
//	(1 + r/100/cf)^(cf/ppy) - 1
//
// 指数为分数，幂运算走 float64，其余仍用 decimal
func EffectiveRate(annualRate Decimal, compoundingFrequency, paymentsPerYear int) (Decimal, error) {
	r := annualRate.InexactFloat64() / 100.0 / float64(compoundingFrequency)
	exp := float64(compoundingFrequency) / float64(paymentsPerYear)
	er := math.Pow(1.0+r, exp) - 1.0
	if math.IsNaN(er) || math.IsInf(er, 0) {
		return decimal.Zero, ErrRateNotFinite
	}
	return decimal.NewFromFloat(er), nil
}

// PaymentFrequencyDays 相邻两期计划还款日的间隔天数 round(365.25/ppy)
func PaymentFrequencyDays(paymentsPerYear int) int {
	return int(math.Round(365.25 / float64(paymentsPerYear)))
}
