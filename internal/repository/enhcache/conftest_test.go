package enhcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/db"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
)

type mockEnhancer struct {
	result  *intent.Intent
	err     error
	enabled bool
	calls   int
}

func (m *mockEnhancer) Enhance(
	_ context.Context, _ string, _ intent.Intent, _ learning.Context,
) (*intent.Intent, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockEnhancer) Enabled() bool { return m.enabled }

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedEnhancer(t *testing.T, inner *mockEnhancer) (*CachedEnhancer, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	ce := New(inner, ms, "test-model", 0, nil, zap.NewNop())
	return ce, ms
}
