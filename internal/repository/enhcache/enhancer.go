package enhcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/db"
	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
)

var cacheKeyPrefix = domain.KeyPrefix + "intent_cache:"

// DefaultTTL bounds how long a cached intent stays valid. Learned context
// evolves, so cached answers must age out.
const DefaultTTL = time.Hour

// store is the consumer interface for the intent cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// inner is the wrapped enhancer contract.
type inner interface {
	Enhance(ctx context.Context, rawQuery string, local intent.Intent, learned learning.Context) (*intent.Intent, error)
	Enabled() bool
}

// CachedEnhancer caches enhanced intents in a key-value store. Identical
// queries within the TTL skip the model call entirely.
type CachedEnhancer struct {
	inner      inner
	store      store
	model      string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	in inner,
	s store,
	model string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedEnhancer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedEnhancer{
		inner:      in,
		store:      s,
		model:      model,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Enabled reports whether the wrapped enhancer has credentials.
func (c *CachedEnhancer) Enabled() bool {
	return c.inner.Enabled()
}

// Enhance returns a cached intent or calls the inner enhancer.
// Cache hit: zero tokens consumed. Only successful enhancements are cached.
func (c *CachedEnhancer) Enhance(
	ctx context.Context, rawQuery string, local intent.Intent, learned learning.Context,
) (*intent.Intent, error) {
	key := c.cacheKey(rawQuery)

	if it, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return it, nil
	}

	c.incCache("miss")

	enhanced, err := c.inner.Enhance(ctx, rawQuery, local, learned)
	if err != nil {
		return nil, fmt.Errorf("enhance query: %w", err)
	}

	if enhanced != nil {
		c.putToCache(ctx, key, enhanced)
	}
	return enhanced, nil
}

func (c *CachedEnhancer) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the model and the normalized query. The model is part of
// the key so a model change never serves stale interpretations.
func (c *CachedEnhancer) cacheKey(rawQuery string) string {
	norm := strings.ToLower(strings.Join(strings.Fields(rawQuery), " "))
	h := sha256.Sum256([]byte(c.model + "\x00" + norm))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedEnhancer) getFromCache(ctx context.Context, key string) (*intent.Intent, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached intent", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var it intent.Intent
	if err := json.Unmarshal(data, &it); err != nil {
		c.logger.Warn("Failed to parse cached intent", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return &it, true
}

func (c *CachedEnhancer) putToCache(ctx context.Context, key string, it *intent.Intent) {
	data, err := json.Marshal(it)
	if err != nil {
		c.logger.Warn("Failed to encode intent for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache intent", zap.String("key", key), zap.Error(err))
	}
}
