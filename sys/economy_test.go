package sys

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCountersUnknownUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	c, err := GetCounters(ctx, snowflake.ID(1))
	require.NoError(t, err)
	assert.Zero(t, c.Coins)
	assert.Zero(t, c.XP)
	assert.Zero(t, c.Level)
	assert.Zero(t, c.LastDaily)
}

func TestAdjustCoins(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)

	balance, err := AdjustCoins(ctx, user, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	balance, err = AdjustCoins(ctx, user, -30)
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance)
}

func TestSpendCoins(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)

	_, err := AdjustCoins(ctx, user, 50)
	require.NoError(t, err)

	balance, err := SpendCoins(ctx, user, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)

	_, err = SpendCoins(ctx, user, 31)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// The failed debit must not have touched the balance
	c, err := GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(30), c.Coins)

	_, err = SpendCoins(ctx, user, -1)
	assert.Error(t, err)
}

func TestSpendCoinsConcurrent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)

	_, err := AdjustCoins(ctx, user, 100)
	require.NoError(t, err)

	// 10 concurrent debits of 30 against a balance of 100: exactly 3
	// can succeed.
	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := SpendCoins(ctx, user, 30)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrInsufficientBalance)
		}
	}
	assert.Equal(t, 3, succeeded)

	c, err := GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(10), c.Coins)
}

func TestAwardXP(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)

	// 9 xp puts the user at level 3 (floor of sqrt)
	level, leveledUp, err := AwardXP(ctx, user, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), level)
	assert.True(t, leveledUp)

	// 10 xp is still level 3
	level, leveledUp, err = AwardXP(ctx, user, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), level)
	assert.False(t, leveledUp)

	// 16 xp crosses to level 4
	level, leveledUp, err = AwardXP(ctx, user, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(4), level)
	assert.True(t, leveledUp)

	c, err := GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(16), c.XP)
	assert.Equal(t, int64(4), c.Level)
}

func TestClaimDaily(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	granted, _, err := ClaimDaily(ctx, user, now, DailyCooldown, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), granted)

	// A second claim an hour later is refused with the time remaining
	_, remaining, err := ClaimDaily(ctx, user, now.Add(time.Hour), DailyCooldown, 100)
	require.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, 23*time.Hour, remaining)

	// The refused claim must not have granted anything
	c, err := GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(100), c.Coins)

	// After the cooldown the claim succeeds again
	granted, _, err = ClaimDaily(ctx, user, now.Add(DailyCooldown), DailyCooldown, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), granted)

	c, err = GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(200), c.Coins)
}

func TestTransferCoins(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := snowflake.ID(1)
	bob := snowflake.ID(2)

	_, err := AdjustCoins(ctx, alice, 100)
	require.NoError(t, err)

	require.NoError(t, TransferCoins(ctx, alice, bob, 40))

	a, err := GetCounters(ctx, alice)
	require.NoError(t, err)
	b, err := GetCounters(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(60), a.Coins)
	assert.Equal(t, int64(40), b.Coins)

	// An overdrawing transfer changes neither side
	err = TransferCoins(ctx, alice, bob, 61)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	a, err = GetCounters(ctx, alice)
	require.NoError(t, err)
	b, err = GetCounters(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(60), a.Coins)
	assert.Equal(t, int64(40), b.Coins)

	assert.Error(t, TransferCoins(ctx, alice, bob, 0))
	assert.Error(t, TransferCoins(ctx, alice, bob, -5))
}

func TestTopBalances(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for i, coins := range []int64{50, 200, 100} {
		_, err := AdjustCoins(ctx, snowflake.ID(i+1), coins)
		require.NoError(t, err)
	}

	entries, err := TopBalances(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, snowflake.ID(2), entries[0].UserID)
	assert.Equal(t, int64(200), entries[0].Coins)
	assert.Equal(t, snowflake.ID(3), entries[1].UserID)
	assert.Equal(t, int64(100), entries[1].Coins)
}
