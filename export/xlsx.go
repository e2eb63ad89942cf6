package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/riskmanagement123/canamort"
)

const (
	summarySheet  = "Summary"
	scheduleSheet = "Schedule"
	currencyFmt   = "$#,##0.00"
)

// WriteWorkbook 输出两张工作表：汇总 + 全量期供明细，金额列带货币格式
func WriteWorkbook(w io.Writer, result *canamort.CalculationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return err
	}

	numFmt := currencyFmt
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	if err := writeSummary(f, result.Summary, currency); err != nil {
		return err
	}
	if err := writeSchedule(f, result.Schedule, currency); err != nil {
		return err
	}
	return f.Write(w)
}

func writeSummary(f *excelize.File, s canamort.LoanSummary, currency int) error {
	rows := []struct {
		label    string
		value    any
		monetary bool
	}{
		{"Periodic Payment", s.PeriodicPayment.InexactFloat64(), true},
		{"Total Interest", s.TotalInterest.InexactFloat64(), true},
		{"Total of Payments", s.TotalPaid.InexactFloat64(), true},
		{"Rate Term Interest", s.RateTermInterest.InexactFloat64(), true},
		{"Rate Term Principal", s.RateTermPrincipal.InexactFloat64(), true},
		{"Number of Payments", s.NumberOfPayments, false},
	}
	for i, r := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue(summarySheet, labelCell, r.label); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, valueCell, r.value); err != nil {
			return err
		}
		if r.monetary {
			if err := f.SetCellStyle(summarySheet, valueCell, valueCell, currency); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSchedule(f *excelize.File, schedule []canamort.PaymentRow, currency int) error {
	for col, h := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return err
		}
	}
	for i, row := range schedule {
		values := []any{
			row.PaymentNumber,
			row.PaymentDate.Format(isoDate),
			row.BeginningBalance.InexactFloat64(),
			row.ScheduledPayment.InexactFloat64(),
			row.PrincipalPayment.InexactFloat64(),
			row.InterestPayment.InexactFloat64(),
			row.EndingBalance.InexactFloat64(),
			row.CumulativeInterest.InexactFloat64(),
			row.DaysBetweenPayments,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
				return err
			}
		}
		// 金额列 C..H
		first, _ := excelize.CoordinatesToCellName(3, i+2)
		last, _ := excelize.CoordinatesToCellName(8, i+2)
		if err := f.SetCellStyle(scheduleSheet, first, last, currency); err != nil {
			return err
		}
	}
	return nil
}
