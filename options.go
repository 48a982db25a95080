package partdex

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs    []string
	username string
	password string
	database int

	enhancerAPIKey  string
	enhancerBaseURL string
	enhancerModel   string
	enhancerTimeout time.Duration

	enhancerDailyTokens   int64
	enhancerMonthlyTokens int64

	logger *zap.Logger
}

// WithRedis sets the Redis addresses to connect to.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithCredentials sets the database username and password.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDatabase selects a Redis logical database.
func WithDatabase(db int) Option {
	return func(c *clientConfig) { c.database = db }
}

// WithEnhancer enables LLM query enhancement. Without this option the
// engine runs on local parsing alone.
func WithEnhancer(apiKey, model string) Option {
	return func(c *clientConfig) {
		c.enhancerAPIKey = apiKey
		c.enhancerModel = model
	}
}

// WithEnhancerBaseURL points the enhancer at a non-default API endpoint.
func WithEnhancerBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.enhancerBaseURL = baseURL }
}

// WithEnhancerTimeout bounds the enhancer race. The local parse wins
// whenever the enhancer is slower than this.
func WithEnhancerTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		if d > 0 {
			c.enhancerTimeout = d
		}
	}
}

// WithEnhancerBudget caps enhancer token spend per day and per month.
// Zero means unlimited for that window. A spent budget falls back to
// local parsing, it never fails a query.
func WithEnhancerBudget(dailyTokens, monthlyTokens int64) Option {
	return func(c *clientConfig) {
		c.enhancerDailyTokens = dailyTokens
		c.enhancerMonthlyTokens = monthlyTokens
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
