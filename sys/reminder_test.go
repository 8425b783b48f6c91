package sys

import (
	"context"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleReminder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := snowflake.ID(1)

	dueAt, err := ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), "10m", "stretch", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Minute), dueAt)

	reminders, err := GetRemindersForUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "stretch", reminders[0].Message)
	assert.Equal(t, dueAt.Unix(), reminders[0].RemindAt.Unix())
}

func TestScheduleReminderInvalidToken(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)

	_, err := ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), "10x", "nope", time.Now())
	require.ErrorIs(t, err, ErrInvalidDuration)

	// Nothing may be persisted for a bad token
	reminders, err := GetRemindersForUser(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestClaimDueReminders(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := snowflake.ID(1)

	for _, r := range []struct {
		message string
		token   string
	}{
		{"due-first", "5m"},
		{"due-second", "10m"},
		{"not-due", "2h"},
	} {
		_, err := ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), r.token, r.message, now)
		require.NoError(t, err)
	}

	claimed, err := ClaimDueReminders(ctx, now.Add(30*time.Minute))
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	assert.Equal(t, "due-first", claimed[0].Message)
	assert.Equal(t, "due-second", claimed[1].Message)

	// A second sweep at the same instant must claim nothing
	claimed, err = ClaimDueReminders(ctx, now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, claimed)

	// The future reminder survives
	reminders, err := GetRemindersForUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "not-due", reminders[0].Message)
}

func TestClaimDueRemindersBoundary(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	dueAt, err := ScheduleReminder(ctx, snowflake.ID(1), snowflake.ID(10), snowflake.ID(100), "10m", "exact", now)
	require.NoError(t, err)

	// A reminder due exactly at the sweep instant is claimed
	claimed, err := ClaimDueReminders(ctx, dueAt)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, "exact", claimed[0].Message)
}

func TestDeleteReminder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := snowflake.ID(1)
	stranger := snowflake.ID(2)

	_, err := ScheduleReminder(ctx, owner, snowflake.ID(10), snowflake.ID(100), "10m", "mine", time.Now())
	require.NoError(t, err)

	reminders, err := GetRemindersForUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	id := reminders[0].ID

	// Another user cannot dismiss it
	deleted, err := DeleteReminder(ctx, id, stranger)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = DeleteReminder(ctx, id, owner)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err := GetRemindersCountForUser(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteAllRemindersForUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := snowflake.ID(1)
	other := snowflake.ID(2)

	for i := 0; i < 3; i++ {
		_, err := ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), "10m", "a", time.Now())
		require.NoError(t, err)
	}
	_, err := ScheduleReminder(ctx, other, snowflake.ID(10), snowflake.ID(100), "10m", "b", time.Now())
	require.NoError(t, err)

	count, err := DeleteAllRemindersForUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	total, err := GetRemindersCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
