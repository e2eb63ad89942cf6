package canamort

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// CalculationResult 对外返回的完整结果，带本次计算的标识
type CalculationResult struct {
	ID       string       `json:"id"`
	Schedule []PaymentRow `json:"schedule"`
	Summary  LoanSummary  `json:"summary"`
}

// Calculator 统一入口：校验 → 查缓存 → 计算 → 回填缓存。
// 计算本身是纯函数，重复入参直接复用缓存结果
type Calculator struct {
	cache  Cache
	logger *slog.Logger
}

func NewCalculator(cache Cache, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{cache: cache, logger: logger}
}

func (c *Calculator) Calculate(ctx context.Context, input LoanInput) (*CalculationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := Fingerprint(input)
	if c.cache != nil && key != "" {
		if raw, ok := c.cache.Get(ctx, key); ok {
			var cached CalculationResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				c.logger.Debug("schedule served from cache", "id", cached.ID)
				return &cached, nil
			}
		}
	}

	started := cfg.Clock.Now()
	res, err := BuildSchedule(input)
	if err != nil {
		return nil, err
	}
	out := &CalculationResult{
		ID:       uuid.NewString(),
		Schedule: res.Schedule,
		Summary:  res.Summary,
	}

	if c.cache != nil && key != "" {
		if raw, err := json.Marshal(out); err == nil {
			// 缓存写失败不影响本次结果
			if err := c.cache.Set(ctx, key, string(raw)); err != nil {
				c.logger.Warn("schedule cache write failed", "error", err)
			}
		}
	}

	c.logger.Info("schedule calculated",
		"id", out.ID,
		"payments", out.Summary.NumberOfPayments,
		"periodic_payment", out.Summary.PeriodicPayment.StringFixed(2),
		"elapsed", cfg.Clock.Now().Sub(started),
	)
	return out, nil
}
