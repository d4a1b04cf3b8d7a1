package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/domain/subscription"
	"inkpress/internal/shared/logger"
)

func createTestSubscription(t *testing.T, db *testSubscriptionEnv, userID uint, startsAt time.Time, endsAt *time.Time) *subscription.Subscription {
	t.Helper()
	price := 99000.0
	provider := "xendit"
	paymentID := "inv-123"
	sub, err := subscription.NewSubscription(
		userID, subscription.TypePremium, &price,
		startsAt, endsAt,
		&provider, &paymentID,
		map[string]interface{}{"id": "inv-123", "status": "PAID"},
	)
	require.NoError(t, err)
	require.NoError(t, db.repo.Create(context.Background(), sub))
	return sub
}

type testSubscriptionEnv struct {
	repo subscription.Repository
}

func newSubscriptionEnv(t *testing.T) *testSubscriptionEnv {
	db := setupTestDB(t)
	return &testSubscriptionEnv{repo: NewSubscriptionRepository(db, logger.NewLogger())}
}

func TestSubscriptionRepository_CreateAndGet(t *testing.T) {
	env := newSubscriptionEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()
	ends := now.AddDate(0, 1, 0)

	sub := createTestSubscription(t, env, 1, now.Add(-time.Hour), &ends)
	assert.NotZero(t, sub.ID())

	t.Run("payment blob round-trips verbatim", func(t *testing.T) {
		found, err := env.repo.GetByID(ctx, sub.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "inv-123", found.PaymentData()["id"])
		assert.Equal(t, "PAID", found.PaymentData()["status"])
		require.NotNil(t, found.PaymentProvider())
		assert.Equal(t, "xendit", *found.PaymentProvider())
	})

	t.Run("missing id returns nil without error", func(t *testing.T) {
		found, err := env.repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSubscriptionRepository_FindActiveByUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("returns nil when the user has no rows", func(t *testing.T) {
		env := newSubscriptionEnv(t)
		found, err := env.repo.FindActiveByUser(ctx, 1, now)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("skips expired rows", func(t *testing.T) {
		env := newSubscriptionEnv(t)
		expired := now.Add(-time.Minute)
		createTestSubscription(t, env, 1, now.Add(-time.Hour), &expired)

		found, err := env.repo.FindActiveByUser(ctx, 1, now)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("skips rows that have not started", func(t *testing.T) {
		env := newSubscriptionEnv(t)
		ends := now.AddDate(0, 1, 0)
		createTestSubscription(t, env, 1, now.Add(time.Hour), &ends)

		found, err := env.repo.FindActiveByUser(ctx, 1, now)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("skips cancelled rows inside their window", func(t *testing.T) {
		env := newSubscriptionEnv(t)
		ends := now.AddDate(0, 1, 0)
		sub := createTestSubscription(t, env, 1, now.Add(-time.Hour), &ends)
		require.NoError(t, sub.Cancel())
		require.NoError(t, env.repo.Update(ctx, sub))

		found, err := env.repo.FindActiveByUser(ctx, 1, now)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("returns the most recently created active row", func(t *testing.T) {
		env := newSubscriptionEnv(t)
		ends := now.AddDate(0, 1, 0)
		createTestSubscription(t, env, 1, now.Add(-2*time.Hour), &ends)
		newer := createTestSubscription(t, env, 1, now.Add(-time.Hour), &ends)

		found, err := env.repo.FindActiveByUser(ctx, 1, now)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, newer.ID(), found.ID())
	})

	t.Run("ignores other users", func(t *testing.T) {
		env := newSubscriptionEnv(t)
		ends := now.AddDate(0, 1, 0)
		createTestSubscription(t, env, 2, now.Add(-time.Hour), &ends)

		found, err := env.repo.FindActiveByUser(ctx, 1, now)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSubscriptionRepository_GetByUserID(t *testing.T) {
	env := newSubscriptionEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()
	ends := now.AddDate(0, 1, 0)

	older := createTestSubscription(t, env, 1, now.Add(-48*time.Hour), &ends)
	newer := createTestSubscription(t, env, 1, now.Add(-time.Hour), &ends)
	createTestSubscription(t, env, 2, now.Add(-time.Hour), &ends)

	history, err := env.repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, newer.ID(), history[0].ID())
	assert.Equal(t, older.ID(), history[1].ID())
}

func TestSubscriptionRepository_Update(t *testing.T) {
	env := newSubscriptionEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()
	ends := now.AddDate(0, 1, 0)

	sub := createTestSubscription(t, env, 1, now.Add(-time.Hour), &ends)
	sub.Deactivate()
	require.NoError(t, env.repo.Update(ctx, sub))

	found, err := env.repo.GetByID(ctx, sub.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, subscription.StatusInactive, found.Status())
}

func TestSubscriptionRepository_DashboardAggregates(t *testing.T) {
	env := newSubscriptionEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()
	ends := now.AddDate(0, 1, 0)
	expired := now.Add(-time.Minute)

	createTestSubscription(t, env, 1, now.Add(-time.Hour), &ends)
	createTestSubscription(t, env, 2, now.Add(-time.Hour), &ends)
	createTestSubscription(t, env, 3, now.Add(-time.Hour), &expired)

	count, err := env.repo.CountActivePremium(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	revenue, err := env.repo.SumActivePremiumRevenue(ctx, now)
	require.NoError(t, err)
	assert.InDelta(t, 198000.0, revenue, 0.01)
}
