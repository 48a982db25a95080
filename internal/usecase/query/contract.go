package query

import (
	"context"

	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
)

// Enhancer asks an external language model to re-read the query. A failed
// or slow call is never surfaced: the parse path falls back to the local
// intent.
type Enhancer interface {
	Enhance(ctx context.Context, rawQuery string, local intent.Intent, learned learning.Context) (*intent.Intent, error)
	Enabled() bool
}

// LearningStore provides prior knowledge about similar queries for the
// enhancer prompt and records what the enhancer contributed. Failures are
// silently ignored.
type LearningStore interface {
	LearnedContext(ctx context.Context, rawQuery string) (learning.Context, error)
	RecordOutcome(ctx context.Context, rawQuery, hint string) error
}

// PartSource lists the candidate records to filter.
type PartSource interface {
	List(ctx context.Context) ([]domain.Part, error)
}
