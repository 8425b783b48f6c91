package proc

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Irfan-005/Bongosorous/sys"
)

type fakeSender struct {
	sent []*sys.Reminder
	err  error
}

func (f *fakeSender) Send(ctx context.Context, r *sys.Reminder) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, r)
	return nil
}

func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db") + "?_journal_mode=WAL&_timeout=5000"
	require.NoError(t, sys.InitDatabase(context.Background(), path))
	t.Cleanup(sys.CloseDatabase)
}

func TestRunSweepDeliversDueReminders(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := snowflake.ID(1)

	_, err := sys.ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), "5m", "due", now)
	require.NoError(t, err)
	_, err = sys.ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), "2h", "later", now)
	require.NoError(t, err)

	sender := &fakeSender{}
	runSweep(ctx, sender, now.Add(10*time.Minute))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "due", sender.sent[0].Message)

	// The undelivered future reminder is untouched
	remaining, err := sys.GetRemindersForUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "later", remaining[0].Message)
}

func TestRunSweepDeliversAtMostOnce(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := sys.ScheduleReminder(ctx, snowflake.ID(1), snowflake.ID(10), snowflake.ID(100), "5m", "once", now)
	require.NoError(t, err)

	sender := &fakeSender{}
	sweepAt := now.Add(10 * time.Minute)
	runSweep(ctx, sender, sweepAt)
	runSweep(ctx, sender, sweepAt)

	assert.Len(t, sender.sent, 1)
}

func TestRunSweepFailedSendConsumesReminder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := snowflake.ID(1)

	_, err := sys.ScheduleReminder(ctx, user, snowflake.ID(10), snowflake.ID(100), "5m", "doomed", now)
	require.NoError(t, err)

	sender := &fakeSender{err: errors.New("channel gone")}
	runSweep(ctx, sender, now.Add(10*time.Minute))

	// The claim consumed the row even though delivery failed
	remaining, err := sys.GetRemindersForUser(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// A retry sweep has nothing to deliver
	sender.err = nil
	runSweep(ctx, sender, now.Add(20*time.Minute))
	assert.Empty(t, sender.sent)
}

func TestStartReminderSweepRunsOnce(t *testing.T) {
	setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ok, run, shutdown := StartReminderSweep(ctx, &fakeSender{})
	require.True(t, ok)
	require.NotNil(t, run)
	require.NotNil(t, shutdown)

	ok, run, shutdown = StartReminderSweep(ctx, &fakeSender{})
	assert.False(t, ok)
	assert.Nil(t, run)
	assert.Nil(t, shutdown)
}
