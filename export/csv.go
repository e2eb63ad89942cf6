// Package export renders computed schedules into the fixed CSV and
// workbook layouts consumed by downstream reporting.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/riskmanagement123/canamort"
)

const isoDate = "2006-01-02"

var csvHeader = []string{
	"payment_number",
	"payment_date",
	"beginning_balance",
	"scheduled_payment",
	"principal_payment",
	"interest_payment",
	"ending_balance",
	"cumulative_interest",
	"days_between_payments",
}

// WriteCSV 按固定 9 列输出期供明细：期号、ISO 日期、6 个两位小数金额列、天数
func WriteCSV(w io.Writer, schedule []canamort.PaymentRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range schedule {
		record := []string{
			strconv.Itoa(row.PaymentNumber),
			row.PaymentDate.Format(isoDate),
			row.BeginningBalance.StringFixed(2),
			row.ScheduledPayment.StringFixed(2),
			row.PrincipalPayment.StringFixed(2),
			row.InterestPayment.StringFixed(2),
			row.EndingBalance.StringFixed(2),
			row.CumulativeInterest.StringFixed(2),
			strconv.Itoa(row.DaysBetweenPayments),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
