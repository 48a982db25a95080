// Package learning persists lightweight per-query-shape hints that the
// enhancer prompt is enriched with. It is strictly best-effort: a read or
// write failure never affects the parse path.
package learning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/partdex/partdex/internal/db"
	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/learning"
)

// store is the consumer interface for learned context (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	IncrBy(ctx context.Context, key string, val int64) error
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

const (
	keyPrefix    = domain.KeyPrefix + "learning:"
	counterKey   = domain.KeyPrefix + "learning:outcomes"
	recordTTL    = 30 * 24 * time.Hour
	maxHints     = 5
	maxKeyTokens = 6
)

// record is the stored shape of learned context.
type record struct {
	Outcomes int      `json:"outcomes"`
	Hints    []string `json:"hints"`
}

// Repo implements usecase/query.LearningStore.
type Repo struct {
	store store
}

// New creates a learning repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// LearnedContext returns prior hints for queries shaped like this one.
func (r *Repo) LearnedContext(ctx context.Context, rawQuery string) (learning.Context, error) {
	raw, err := r.store.Get(ctx, learnKey(rawQuery))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return learning.Context{}, nil
		}
		return learning.Context{}, fmt.Errorf("get learned context: %w", err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return learning.Context{}, fmt.Errorf("decode learned context: %w", err)
	}
	return learning.Context{
		HasPriorLearning: rec.Outcomes > 0,
		Hints:            rec.Hints,
	}, nil
}

// RecordOutcome saves a hint produced by a successful enhancement, keeping
// the most recent ones.
func (r *Repo) RecordOutcome(ctx context.Context, rawQuery, hint string) error {
	key := learnKey(rawQuery)

	rec := record{}
	if raw, err := r.store.Get(ctx, key); err == nil {
		_ = json.Unmarshal(raw, &rec)
	}

	rec.Outcomes++
	if hint != "" && !contains(rec.Hints, hint) {
		rec.Hints = append(rec.Hints, hint)
		if len(rec.Hints) > maxHints {
			rec.Hints = rec.Hints[len(rec.Hints)-maxHints:]
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode learned context: %w", err)
	}
	if err := r.store.SetWithTTL(ctx, key, data, recordTTL); err != nil {
		return fmt.Errorf("set learned context: %w", err)
	}

	// Global outcome counter for diagnostics; best effort.
	if err := r.store.IncrBy(ctx, counterKey, 1); err == nil {
		_ = r.store.Expire(ctx, counterKey, recordTTL, true)
	}
	return nil
}

// learnKey buckets queries by their leading significant tokens, so small
// wording variations share learned context.
func learnKey(rawQuery string) string {
	fields := strings.Fields(strings.ToLower(rawQuery))
	if len(fields) > maxKeyTokens {
		fields = fields[:maxKeyTokens]
	}
	if len(fields) == 0 {
		return keyPrefix + "empty"
	}
	return keyPrefix + strings.Join(fields, "-")
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
