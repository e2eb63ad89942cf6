package canamort

import "time"

// easterSunday computes Gregorian Easter via the anonymous Gauss
// (Meeus/Jones/Butcher) computus. Valid for any year >= 1583.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// nthWeekday 某年某月第 n 个指定星期几（n 从 1 开始）
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(weekday - t.Weekday())
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, offset+(n-1)*7)
}

// CanadianHolidays 给定年份的加拿大法定节假日（已含周末顺延后的观察日）
func CanadianHolidays(year int) []time.Time {
	easter := easterSunday(year)

	// Victoria Day: the Monday on or before May 25.
	victoria := time.Date(year, time.May, 25, 0, 0, 0, 0, time.UTC)
	for victoria.Weekday() != time.Monday {
		victoria = victoria.AddDate(0, 0, -1)
	}

	canadaDay := time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
	if canadaDay.Weekday() == time.Sunday {
		canadaDay = canadaDay.AddDate(0, 0, 1)
	}

	christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
	if christmas.Weekday() == time.Sunday {
		christmas = christmas.AddDate(0, 0, 1)
	}

	boxing := time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC)
	switch boxing.Weekday() {
	case time.Sunday:
		boxing = boxing.AddDate(0, 0, 1)
	case time.Saturday:
		boxing = boxing.AddDate(0, 0, 2)
	}

	return []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),   // New Year's Day
		nthWeekday(year, time.February, time.Monday, 3),          // Family Day
		easter.AddDate(0, 0, -2),                                 // Good Friday
		easter.AddDate(0, 0, 1),                                  // Easter Monday
		victoria,                                                 // Victoria Day
		canadaDay,                                                // Canada Day
		nthWeekday(year, time.August, time.Monday, 1),            // Civic Holiday
		nthWeekday(year, time.September, time.Monday, 1),         // Labour Day
		nthWeekday(year, time.October, time.Monday, 2),           // Thanksgiving
		time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC), // Remembrance Day
		christmas, // Christmas Day
		boxing,    // Boxing Day
	}
}

// IsCanadianHoliday 按年月日比对（忽略时分秒）判断是否法定节假日
func IsCanadianHoliday(t time.Time) bool {
	for _, h := range holidaysForYear(t.Year()) {
		if sameDate(h, t) {
			return true
		}
	}
	return false
}

func sameDate(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CompareDate 按日历日比较两个时间，忽略时分秒
func CompareDate(t1, t2 time.Time) int {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()

	switch {
	case y1 < y2 || (y1 == y2 && m1 < m2) || (y1 == y2 && m1 == m2 && d1 < d2):
		return -1
	case y1 == y2 && m1 == m2 && d1 == d2:
		return 0
	default:
		return 1
	}
}
