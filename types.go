package canamort

import (
	"time"

	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

// PaymentType 利息计提位置（期初/期末）
type PaymentType string

// RollConvention 还款日跳期规则
type RollConvention string

type RoundStrategy = func(d decimal.Decimal) decimal.Decimal

const (
	PaymentEnd       PaymentType = "END"
	PaymentBeginning PaymentType = "BEGINNING"
)

const (
	Unadjusted RollConvention = "UNADJUSTED"         //严格按日历算时间
	Following  RollConvention = "FOLLOWING"          //如果是节假日，向后挪
	Preceding  RollConvention = "PRECEDING"          //如果是节假日，向前挪
	ModFollow  RollConvention = "MODIFIED_FOLLOWING" //如果是节假日，向后挪，但如果跨月就向前挪
)

// Canonical per-year payment counts accepted on LoanInput. Other values in
// [1,365] still pass validation; these are the ones Canadian lenders quote.
const (
	FreqAnnual     = 1
	FreqSemiAnnual = 2
	FreqQuarterly  = 4
	FreqMonthly    = 12
	FreqSemiMonth  = 24
	FreqBiWeekly   = 26
	FreqWeekly     = 52
)

// CompoundSemiAnnual is the Canadian mortgage default: nominal rates compound
// twice a year regardless of payment frequency.
const CompoundSemiAnnual = 2

// LoanInput 一次计算的全部入参，构造后不再修改
type LoanInput struct {
	LoanAmount         Decimal `json:"loan_amount"`
	AnnualInterestRate Decimal `json:"annual_interest_rate"` // 名义年利率，百分数（5.25 表示 5.25%）
	RateTermMonths     int     `json:"rate_term_months"`
	AmortizationMonths int     `json:"amortization_months"`
	PaymentsPerYear    int     `json:"payments_per_year"`
	// CompoundingFrequency 每年复利次数，加拿大按揭默认半年复利
	CompoundingFrequency int       `json:"compounding_frequency"`
	StartDate            time.Time `json:"start_date"`
	FirstPaymentDate     time.Time `json:"first_payment_date"`
	RateTermMaturityDate time.Time `json:"rate_term_maturity_date"`
	// PaymentType 仅作为已校验输入保留；引擎始终按期末计息
	PaymentType PaymentType `json:"payment_type"`
}

// PaymentRow 期供明细，一期一行
type PaymentRow struct {
	PaymentNumber       int       `json:"payment_number"` // 第几期（从 1 开始）
	PaymentDate         time.Time `json:"payment_date"`   // 营业日调整后的实际还款日
	BeginningBalance    Decimal   `json:"beginning_balance"`
	ScheduledPayment    Decimal   `json:"scheduled_payment"`
	PrincipalPayment    Decimal   `json:"principal_payment"`
	InterestPayment     Decimal   `json:"interest_payment"`
	EndingBalance       Decimal   `json:"ending_balance"`
	CumulativeInterest  Decimal   `json:"cumulative_interest"`
	DaysBetweenPayments int       `json:"days_between_payments"` // 距上期（首期距起息日）的自然日数
}

// LoanSummary 单次计算的汇总
type LoanSummary struct {
	// PeriodicPayment 每期固定还款额。JSON 标签沿用参照口径的
	// monthly_payment 字段名，和导出格式保持兼容
	PeriodicPayment   Decimal `json:"monthly_payment"`
	TotalInterest     Decimal `json:"total_interest"`
	TotalPaid         Decimal `json:"total_payments"`
	RateTermInterest  Decimal `json:"rate_term_interest"`  // 利率锁定期内累计利息
	RateTermPrincipal Decimal `json:"rate_term_principal"` // 利率锁定期内累计本金
	NumberOfPayments  int     `json:"number_of_payments"`  // 实际期数（提前结清时小于配置期数）
}

// ScheduleResult 引擎输出：有序期供明细 + 汇总
type ScheduleResult struct {
	Schedule []PaymentRow `json:"schedule"`
	Summary  LoanSummary  `json:"summary"`
}

var BankRound = func(d decimal.Decimal) decimal.Decimal { return d.RoundBank(2) }

// Money 金额展示辅助，按配置的舍入策略处理（默认银行家舍入保留 2 位）
func Money(d decimal.Decimal) decimal.Decimal {
	return cfg.RoundStrategy(d)
}
