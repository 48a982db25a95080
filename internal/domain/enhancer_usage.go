package domain

import "context"

type enhancerUsageKey struct{}

// EnhancerUsage collects token usage for a single parse request.
// The budget layer puts a mutable pointer into the context before calling the
// transport; the transport writes after the completion call; the budget layer
// reads it to charge the spend.
type EnhancerUsage struct {
	TotalTokens int
	Used        bool // true if the model was called, even on a cache hit with 0 tokens
}

// NewContextWithUsage returns a context with an embedded usage collector.
func NewContextWithUsage(ctx context.Context) (context.Context, *EnhancerUsage) {
	u := &EnhancerUsage{}
	return context.WithValue(ctx, enhancerUsageKey{}, u), u
}

// UsageFromContext extracts the usage collector from context. Returns nil if not set.
func UsageFromContext(ctx context.Context) *EnhancerUsage {
	u, _ := ctx.Value(enhancerUsageKey{}).(*EnhancerUsage)
	return u
}

// AddTokens records consumed tokens.
func (u *EnhancerUsage) AddTokens(n int) {
	if u != nil {
		u.TotalTokens += n
		u.Used = true
	}
}
