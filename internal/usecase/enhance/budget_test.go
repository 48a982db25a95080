package enhance

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/domain"
)

func TestBudgetTracker_RejectWhenExceeded(t *testing.T) {
	bt := NewBudgetTracker(100, 0, BudgetActionReject, zap.NewNop())

	bt.Record(100)

	err := bt.Check(context.Background())
	require.ErrorIs(t, err, domain.ErrEnhancerQuotaExceeded)
}

func TestBudgetTracker_WarnWhenExceeded(t *testing.T) {
	bt := NewBudgetTracker(100, 0, BudgetActionWarn, zap.NewNop())

	bt.Record(200)

	require.NoError(t, bt.Check(context.Background()))
}

func TestBudgetTracker_MonthlyReject(t *testing.T) {
	bt := NewBudgetTracker(0, 500, BudgetActionReject, zap.NewNop())

	bt.Record(500)

	err := bt.Check(context.Background())
	require.ErrorIs(t, err, domain.ErrEnhancerQuotaExceeded)
}

func TestBudgetTracker_UnlimitedWhenZero(t *testing.T) {
	bt := NewBudgetTracker(0, 0, BudgetActionReject, zap.NewNop())

	bt.Record(999999999)

	require.NoError(t, bt.Check(context.Background()))
}

func TestBudgetTracker_Remaining(t *testing.T) {
	bt := NewBudgetTracker(1000, 10000, BudgetActionWarn, zap.NewNop())

	bt.Record(300)

	assert.Equal(t, int64(700), bt.RemainingDaily())
	assert.Equal(t, int64(9700), bt.RemainingMonthly())
}

func TestBudgetTracker_RemainingUnlimited(t *testing.T) {
	bt := NewBudgetTracker(0, 0, BudgetActionWarn, zap.NewNop())

	assert.Equal(t, int64(-1), bt.RemainingDaily())
	assert.Equal(t, int64(-1), bt.RemainingMonthly())
}

func TestBudgetTracker_RemainingClampedAtZero(t *testing.T) {
	bt := NewBudgetTracker(100, 0, BudgetActionWarn, zap.NewNop())

	bt.Record(250)

	assert.Equal(t, int64(0), bt.RemainingDaily())
}

type mockBudgetStore struct {
	mu    sync.Mutex
	data  map[string]int64
	incrs int
}

func (m *mockBudgetStore) IncrBy(_ context.Context, key string, val int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]int64)
	}
	m.data[key] += val
	m.incrs++
	return nil
}

func (m *mockBudgetStore) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func TestBudgetTracker_LoadsFromStore(t *testing.T) {
	store := &mockBudgetStore{data: map[string]int64{}}
	seed := NewBudgetTracker(0, 0, BudgetActionWarn, zap.NewNop()).
		WithStore(context.Background(), store)
	seed.Record(400)

	bt := NewBudgetTracker(1000, 0, BudgetActionReject, zap.NewNop()).
		WithStore(context.Background(), store)

	assert.Equal(t, int64(400), bt.DailyUsed())
	assert.Equal(t, int64(400), bt.MonthlyUsed())
}

func TestBudgetTracker_WriteBehind(t *testing.T) {
	store := &mockBudgetStore{}
	bt := NewBudgetTracker(0, 0, BudgetActionWarn, zap.NewNop()).
		WithStore(context.Background(), store)

	bt.Record(50)

	// Record writes both the daily and the monthly counter.
	assert.Equal(t, 2, store.incrs)
}
