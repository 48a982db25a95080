package enhance

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
	"github.com/partdex/partdex/internal/metrics"
)

// BudgetChecker is the local interface for budget enforcement.
type BudgetChecker interface {
	Check(ctx context.Context) error
	Record(tokens int64)
	RemainingDaily() int64
	RemainingMonthly() int64
}

// Enhancer is the wrapped enhancer contract.
type Enhancer interface {
	Enhance(ctx context.Context, rawQuery string, local intent.Intent, learned learning.Context) (*intent.Intent, error)
	Enabled() bool
}

// InstrumentedEnhancer wraps an Enhancer with budget enforcement and logging.
// Transport metrics (requests, duration, tokens) are recorded in transport/openai.
// This layer owns budget tracking and budget-related metrics only.
type InstrumentedEnhancer struct {
	inner  Enhancer
	model  string
	budget BudgetChecker
	logger *zap.Logger
}

// NewInstrumentedEnhancer wraps an enhancer with budget and observability.
func NewInstrumentedEnhancer(
	inner Enhancer, model string,
	budget BudgetChecker, logger *zap.Logger,
) *InstrumentedEnhancer {
	return &InstrumentedEnhancer{
		inner:  inner,
		model:  model,
		budget: budget,
		logger: logger,
	}
}

// Enabled reports whether the wrapped enhancer has credentials.
func (p *InstrumentedEnhancer) Enabled() bool {
	return p.inner.Enabled()
}

// Enhance checks the budget, delegates to the inner enhancer, and charges
// the consumed tokens.
func (p *InstrumentedEnhancer) Enhance(
	ctx context.Context, rawQuery string, local intent.Intent, learned learning.Context,
) (*intent.Intent, error) {
	if p.budget != nil {
		if err := p.budget.Check(ctx); err != nil {
			p.logger.Warn("Enhancer budget exceeded",
				zap.String("model", p.model),
				zap.Error(err),
			)
			return nil, fmt.Errorf("budget check: %w", err)
		}
	}

	ctx, usage := domain.NewContextWithUsage(ctx)

	start := time.Now()

	enhanced, err := p.inner.Enhance(ctx, rawQuery, local, learned)

	duration := time.Since(start)

	// Tokens were consumed even when the response could not be decoded.
	if p.budget != nil && usage.TotalTokens > 0 {
		p.budget.Record(int64(usage.TotalTokens))
		remaining := metrics.EnhancerBudgetTokensRemaining
		remaining.WithLabelValues("daily").Set(float64(p.budget.RemainingDaily()))
		remaining.WithLabelValues("monthly").Set(float64(p.budget.RemainingMonthly()))
	}

	if err != nil {
		return nil, fmt.Errorf("enhance: %w", err)
	}

	p.logger.Debug("Enhancer request completed",
		zap.String("model", p.model),
		zap.Duration("duration", duration),
		zap.Int("total_tokens", usage.TotalTokens),
	)

	return enhanced, nil
}
