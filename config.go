package canamort

import (
	"sync"
	"time"
)

// Clock 提供可替换的时间源
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// HolidayProvider 提供节假日判断（不含周末，周末由营业日逻辑单独处理）
type HolidayProvider interface {
	IsHoliday(t time.Time) bool
}

// CanadaHolidayProvider 默认加拿大法定节假日，按年缓存计算结果
type CanadaHolidayProvider struct{}

func (CanadaHolidayProvider) IsHoliday(t time.Time) bool {
	return IsCanadianHoliday(t)
}

var (
	holidayMu    sync.RWMutex
	holidayCache = map[int][]time.Time{}
)

// holidaysForYear 节假日全部可计算，首次访问的年份计算后缓存
func holidaysForYear(year int) []time.Time {
	holidayMu.RLock()
	hs, ok := holidayCache[year]
	holidayMu.RUnlock()
	if ok {
		return hs
	}
	hs = CanadianHolidays(year)
	holidayMu.Lock()
	holidayCache[year] = hs
	holidayMu.Unlock()
	return hs
}

// Config 运行时配置
type Config struct {
	RoundStrategy RoundStrategy
	Holiday       HolidayProvider
	Clock         Clock
}

var cfg = defaults(Config{})

// Start 初始化运行时配置与默认依赖。
func Start(c Config) error {
	cfg = defaults(c)
	return nil
}

func defaults(c Config) Config {
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
	if c.RoundStrategy == nil {
		c.RoundStrategy = BankRound
	}
	if c.Holiday == nil {
		c.Holiday = CanadaHolidayProvider{}
	}
	return c
}
