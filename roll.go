package canamort

import "time"

type HolidayFunc func(time.Time) bool

// IsBusinessDay 营业日 = 非周末且非法定节假日
func IsBusinessDay(t time.Time) bool {
	return !isWeekend(t) && !cfg.Holiday.IsHoliday(t)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AdjustPaymentDate 还款日落在非营业日时逐日后移，直到营业日为止。
// 连续节假日加周末靠迭代自然处理，不设上限，不会失败。
func AdjustPaymentDate(t time.Time) time.Time {
	return applyRoll(t, Following, func(d time.Time) bool { return !IsBusinessDay(d) })
}

// RollDate 按指定跳期规则调整日期，skip 返回 true 表示该日需要跳过
func RollDate(t time.Time, roll RollConvention) time.Time {
	return applyRoll(t, roll, func(d time.Time) bool { return !IsBusinessDay(d) })
}

func applyRoll(t time.Time, roll RollConvention, skip HolidayFunc) time.Time {
	switch roll {
	case Unadjusted:
		return t
	case Following:
		for skip(t) {
			t = t.AddDate(0, 0, 1)
		}
		return t
	case Preceding:
		for skip(t) {
			t = t.AddDate(0, 0, -1)
		}
		return t
	case ModFollow:
		origMonth := t.Month()
		t2 := t

		for skip(t2) {
			t2 = t2.AddDate(0, 0, 1)
		}
		if t2.Month() != origMonth {
			t2 = t
			for skip(t2) {
				t2 = t2.AddDate(0, 0, -1)
			}
		}
		return t2
	}
	return t
}
