package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EnhancerChecker reports whether the query enhancer is configured.
type EnhancerChecker interface {
	Enabled() bool
}
