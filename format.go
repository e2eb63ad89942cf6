package canamort

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// 展示层格式化走 en-CA locale，分组符与小数点交给 x/text 处理
var caPrinter = message.NewPrinter(language.MustParse("en-CA"))

// FormatCurrency 加元 2 位小数展示，如 $1,234.56
func FormatCurrency(amount Decimal) string {
	v := amount.InexactFloat64()
	if v < 0 {
		return caPrinter.Sprintf("-$%v", number.Decimal(-v,
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return caPrinter.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercentage 百分比 4 位小数展示，如 5.2500%
func FormatPercentage(rate Decimal) string {
	return caPrinter.Sprintf("%v%%", number.Decimal(rate.InexactFloat64(),
		number.MinFractionDigits(4), number.MaxFractionDigits(4)))
}
