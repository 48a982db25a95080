package enhcache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/partdex/partdex/internal/db"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
)

func TestEnhance_CacheMiss(t *testing.T) {
	enhanced := intent.New()
	enhanced.PartsBrands = []string{"BOSCH"}
	inner := &mockEnhancer{result: &enhanced, enabled: true}
	ce, ms := newTestCachedEnhancer(t, inner)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	var setTTL time.Duration
	ms.setFn = func(_ context.Context, _ string, _ []byte, ttl time.Duration) error {
		setTTL = ttl
		return nil
	}

	got, err := ce.Enhance(ctx, "bosch brake pads", intent.New(), learning.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got.PartsBrands) != 1 || got.PartsBrands[0] != "BOSCH" {
		t.Fatalf("unexpected intent: %+v", got)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
	if setTTL != DefaultTTL {
		t.Fatalf("expected cache put with default TTL, got %v", setTTL)
	}
}

func TestEnhance_CacheHit(t *testing.T) {
	inner := &mockEnhancer{enabled: true}
	ce, ms := newTestCachedEnhancer(t, inner)
	ctx := context.Background()

	cached := intent.New()
	cached.PartNumbers = []string{"34116761244"}
	data, err := json.Marshal(&cached)
	if err != nil {
		t.Fatal(err)
	}

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return data, nil
	}

	got, err := ce.Enhance(ctx, "34116761244", intent.New(), learning.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got.PartNumbers) != 1 || got.PartNumbers[0] != "34116761244" {
		t.Fatalf("expected cached intent, got: %+v", got)
	}
	if inner.calls != 0 {
		t.Fatal("inner enhancer must not be called on a cache hit")
	}
}

func TestEnhance_CorruptCacheFallsThrough(t *testing.T) {
	enhanced := intent.New()
	inner := &mockEnhancer{result: &enhanced, enabled: true}
	ce, ms := newTestCachedEnhancer(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("{not json"), nil
	}

	got, err := ce.Enhance(context.Background(), "bosch pads", intent.New(), learning.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected intent from inner enhancer")
	}
	if inner.calls != 1 {
		t.Fatalf("expected fallthrough to inner, got %d calls", inner.calls)
	}
}

func TestEnhance_InnerErrorNotCached(t *testing.T) {
	inner := &mockEnhancer{err: errors.New("model unreachable"), enabled: true}
	ce, ms := newTestCachedEnhancer(t, inner)

	var setCalled bool
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		setCalled = true
		return nil
	}

	_, err := ce.Enhance(context.Background(), "bosch pads", intent.New(), learning.Context{})
	if err == nil {
		t.Fatal("expected error from inner enhancer")
	}
	if setCalled {
		t.Fatal("failed enhancements must not be cached")
	}
}

func TestEnhance_SetErrorIgnored(t *testing.T) {
	enhanced := intent.New()
	inner := &mockEnhancer{result: &enhanced, enabled: true}
	ce, ms := newTestCachedEnhancer(t, inner)

	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return errors.New("store write failed")
	}

	got, err := ce.Enhance(context.Background(), "bosch pads", intent.New(), learning.Context{})
	if err != nil {
		t.Fatalf("cache write failure must not fail the call: %v", err)
	}
	if got == nil {
		t.Fatal("expected intent despite cache write failure")
	}
}

func TestCacheKey_NormalizesWhitespaceAndCase(t *testing.T) {
	ce, _ := newTestCachedEnhancer(t, &mockEnhancer{})

	a := ce.cacheKey("Bosch  Brake   Pads")
	b := ce.cacheKey("bosch brake pads")
	if a != b {
		t.Fatalf("expected identical keys, got %q vs %q", a, b)
	}

	other := New(&mockEnhancer{}, &mockKVStore{}, "other-model", 0, nil, nil)
	if ce.cacheKey("bosch brake pads") == other.cacheKey("bosch brake pads") {
		t.Fatal("different models must produce different cache keys")
	}
}
