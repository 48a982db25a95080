package learning

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/partdex/partdex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	incrs   int64
	expires int
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) IncrBy(_ context.Context, _ string, val int64) error {
	m.incrs += val
	return nil
}

func (m *mockStore) Expire(_ context.Context, _ string, _ time.Duration, _ bool) error {
	m.expires++
	return nil
}

func TestLearnedContext_Unseen(t *testing.T) {
	repo := New(newMockStore())

	got, err := repo.LearnedContext(context.Background(), "brand new query")
	if err != nil {
		t.Fatalf("LearnedContext: %v", err)
	}
	if got.HasPriorLearning || len(got.Hints) != 0 {
		t.Errorf("context = %+v, want empty", got)
	}
}

func TestRecordThenRead(t *testing.T) {
	ms := newMockStore()
	repo := New(ms)
	ctx := context.Background()

	if err := repo.RecordOutcome(ctx, "cheap bosch filters", "bosch is a parts brand here"); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	got, err := repo.LearnedContext(ctx, "cheap bosch filters")
	if err != nil {
		t.Fatalf("LearnedContext: %v", err)
	}
	if !got.HasPriorLearning {
		t.Error("HasPriorLearning = false after an outcome")
	}
	if len(got.Hints) != 1 || got.Hints[0] != "bosch is a parts brand here" {
		t.Errorf("Hints = %v", got.Hints)
	}
	if ms.incrs != 1 {
		t.Errorf("outcome counter incremented %d times, want 1", ms.incrs)
	}
}

func TestRecordOutcome_CapsHints(t *testing.T) {
	repo := New(newMockStore())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		hint := string(rune('a' + i))
		if err := repo.RecordOutcome(ctx, "same query", hint); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	got, err := repo.LearnedContext(ctx, "same query")
	if err != nil {
		t.Fatalf("LearnedContext: %v", err)
	}
	if len(got.Hints) != maxHints {
		t.Errorf("len(Hints) = %d, want %d", len(got.Hints), maxHints)
	}
	if got.Hints[0] != "f" || got.Hints[maxHints-1] != "j" {
		t.Errorf("Hints = %v, want the most recent five", got.Hints)
	}
}

func TestLearnKeyBucketsByLeadingTokens(t *testing.T) {
	a := learnKey("Cheap BOSCH filters with warranty and more words here")
	b := learnKey("cheap bosch filters with warranty and totally different tail")
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
	if a == learnKey("expensive denso pads") {
		t.Error("unrelated queries share a key")
	}
}

func TestLearnedContext_CorruptRecord(t *testing.T) {
	ms := newMockStore()
	ms.data[learnKey("bad record")] = []byte("{not json")
	repo := New(ms)

	_, err := repo.LearnedContext(context.Background(), "bad record")
	if err == nil {
		t.Error("expected decode error for corrupt record")
	}
}

func TestRecordOutcome_SetError(t *testing.T) {
	ms := newMockStore()
	ms.setErr = errors.New("write refused")
	repo := New(ms)

	if err := repo.RecordOutcome(context.Background(), "q", "h"); err == nil {
		t.Error("expected error when the store write fails")
	}
}

func TestStoredRecordShape(t *testing.T) {
	ms := newMockStore()
	repo := New(ms)
	ctx := context.Background()

	if err := repo.RecordOutcome(ctx, "shape check", "hint"); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	raw := ms.data[learnKey("shape check")]
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("stored record not JSON: %v", err)
	}
	if rec.Outcomes != 1 {
		t.Errorf("Outcomes = %d, want 1", rec.Outcomes)
	}
}
