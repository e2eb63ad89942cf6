package canamort

import (
	"time"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// payoffEpsilon 余额不足一分视同结清，提前终止排期
var payoffEpsilon = decimal.NewFromFloat(0.01)

// TotalPaymentCount 配置期数 floor(amortizationMonths/12 * paymentsPerYear)
func TotalPaymentCount(amortizationMonths, paymentsPerYear int) int {
	return amortizationMonths * paymentsPerYear / 12
}

// PaymentAmount 每期固定还款额。有效利率为零时退化为本金均摊，
// 避免年金公式除零；否则用标准年金公式
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
func PaymentAmount(principal, annualRate Decimal, totalPayments, paymentsPerYear, compoundingFrequency int) (Decimal, error) {
	if totalPayments <= 0 {
		return decimal.Zero, ErrNoPeriods
	}
	rate, err := EffectiveRate(annualRate, compoundingFrequency, paymentsPerYear)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(totalPayments))), nil
	}
	return annuityPayment(principal, int64(totalPayments), rate), nil
}

func annuityPayment(principal Decimal, periods int64, rate Decimal) Decimal {
	base1r := rate.Add(one)
	base1rn := base1r.Pow(decimal.NewFromInt(periods))

	numerator := principal.Mul(base1rn).Mul(rate)
	denominator := base1rn.Sub(one)
	return numerator.Div(denominator)
}

// scheduleState 单遍折叠的累加器：余额、累计利息、上期还款日、锁定期合计
type scheduleState struct {
	balance       Decimal
	cumInterest   Decimal
	prevDate      time.Time
	termInterest  Decimal
	termPrincipal Decimal
}

type scheduleBuilder struct {
	payment   Decimal
	dailyRate Decimal
	stepDays  int
	firstDate time.Time
	maturity  time.Time
	total     int
}

// step 生成第 i 期的明细并推进状态。利息按实际间隔天数简单计提，
// 营业日调整只改变本息拆分，不改变每期还款额
func (b *scheduleBuilder) step(st scheduleState, i int) (PaymentRow, scheduleState) {
	scheduled := b.firstDate.AddDate(0, 0, (i-1)*b.stepDays)
	adjusted := AdjustPaymentDate(scheduled)

	days := DaysBetween(st.prevDate, adjusted)
	interest := st.balance.Mul(b.dailyRate).Mul(decimal.NewFromInt(int64(days)))

	principal := b.payment.Sub(interest)
	// 末期，或本金冲销额超过余额时，按余额整付结清
	if i == b.total || principal.GreaterThan(st.balance) {
		principal = st.balance
	}

	ending := st.balance.Sub(principal)
	if ending.IsNegative() {
		ending = decimal.Zero
	}

	next := scheduleState{
		balance:       ending,
		cumInterest:   st.cumInterest.Add(interest),
		prevDate:      adjusted,
		termInterest:  st.termInterest,
		termPrincipal: st.termPrincipal,
	}
	if CompareDate(adjusted, b.maturity) <= 0 {
		next.termInterest = next.termInterest.Add(interest)
		next.termPrincipal = next.termPrincipal.Add(principal)
	}

	row := PaymentRow{
		PaymentNumber:       i,
		PaymentDate:         adjusted,
		BeginningBalance:    st.balance,
		ScheduledPayment:    principal.Add(interest),
		PrincipalPayment:    principal,
		InterestPayment:     interest,
		EndingBalance:       ending,
		CumulativeInterest:  next.cumInterest,
		DaysBetweenPayments: days,
	}
	return row, next
}

// BuildSchedule 唯一的计算入口：生成全部期供明细与汇总。
// 入参默认已经过 Validate；这里只做防御性的退化检查。
// PaymentType 作为已校验输入被接受但不参与分支，计息始终按期末处理
func BuildSchedule(input LoanInput) (*ScheduleResult, error) {
	total := TotalPaymentCount(input.AmortizationMonths, input.PaymentsPerYear)
	if total <= 0 {
		return nil, ErrNoPeriods
	}
	payment, err := PaymentAmount(input.LoanAmount, input.AnnualInterestRate,
		total, input.PaymentsPerYear, input.CompoundingFrequency)
	if err != nil {
		return nil, err
	}

	b := &scheduleBuilder{
		payment:   payment,
		dailyRate: DailyRate(input.AnnualInterestRate),
		stepDays:  PaymentFrequencyDays(input.PaymentsPerYear),
		firstDate: input.FirstPaymentDate,
		maturity:  input.RateTermMaturityDate,
		total:     total,
	}

	st := scheduleState{
		balance:  input.LoanAmount,
		prevDate: input.StartDate,
	}
	rows := make([]PaymentRow, 0, total)
	totalPaid := decimal.Zero

	for i := 1; i <= total; i++ {
		row, next := b.step(st, i)
		rows = append(rows, row)
		totalPaid = totalPaid.Add(row.ScheduledPayment)
		st = next
		if st.balance.LessThanOrEqual(payoffEpsilon) {
			break
		}
	}

	return &ScheduleResult{
		Schedule: rows,
		Summary: LoanSummary{
			PeriodicPayment:   payment,
			TotalInterest:     st.cumInterest,
			TotalPaid:         totalPaid,
			RateTermInterest:  st.termInterest,
			RateTermPrincipal: st.termPrincipal,
			NumberOfPayments:  len(rows),
		},
	}, nil
}
