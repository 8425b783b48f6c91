package sys

import (
	"context"
	"sort"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Reminder is a durable delayed-delivery request. RemindAt is stored as
// unix seconds so sweeps can compare against an injected clock.
type Reminder struct {
	ID        int64
	UserID    snowflake.ID
	ChannelID snowflake.ID
	GuildID   snowflake.ID
	Message   string
	RemindAt  time.Time
	CreatedAt time.Time
}

// ScheduleReminder parses a compact duration token, computes the due time
// relative to now and persists the reminder. Nothing is persisted when the
// token is invalid.
func ScheduleReminder(ctx context.Context, userID, channelID, guildID snowflake.ID, token, message string, now time.Time) (time.Time, error) {
	d, err := ParseDurationToken(token)
	if err != nil {
		return time.Time{}, err
	}

	dueAt := now.Add(d)
	r := &Reminder{
		UserID:    userID,
		ChannelID: channelID,
		GuildID:   guildID,
		Message:   message,
		RemindAt:  dueAt,
	}
	if err := AddReminder(ctx, r); err != nil {
		return time.Time{}, err
	}
	return dueAt, nil
}

func AddReminder(ctx context.Context, r *Reminder) error {
	res, err := DB.ExecContext(ctx, `
		INSERT INTO reminders (user_id, channel_id, guild_id, message, remind_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.UserID.String(), r.ChannelID.String(), r.GuildID.String(), r.Message, r.RemindAt.Unix())
	if err != nil {
		return err
	}
	r.ID, _ = res.LastInsertId()
	return nil
}

func GetRemindersForUser(ctx context.Context, userID snowflake.ID) ([]*Reminder, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT id, user_id, channel_id, guild_id, message, remind_at
		FROM reminders WHERE user_id = ? ORDER BY remind_at ASC, id ASC
	`, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// ClaimDueReminders atomically removes and returns every reminder due at or
// before now, in stable id order. A claimed reminder is gone from the store
// whether or not its delivery later succeeds.
func ClaimDueReminders(ctx context.Context, now time.Time) ([]*Reminder, error) {
	rows, err := DB.QueryContext(ctx, `
		DELETE FROM reminders
		WHERE remind_at <= ?
		RETURNING id, user_id, channel_id, guild_id, message, remind_at
	`, now.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders, err := scanReminders(rows)
	if err != nil {
		return nil, err
	}
	// DELETE ... RETURNING carries no ORDER BY; sort for determinism.
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].ID < reminders[j].ID })
	return reminders, nil
}

func DeleteReminder(ctx context.Context, id int64, userID snowflake.ID) (bool, error) {
	result, err := DB.ExecContext(ctx, "DELETE FROM reminders WHERE id = ? AND user_id = ?", id, userID.String())
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func DeleteAllRemindersForUser(ctx context.Context, userID snowflake.ID) (int64, error) {
	result, err := DB.ExecContext(ctx, "DELETE FROM reminders WHERE user_id = ?", userID.String())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func GetRemindersCountForUser(ctx context.Context, userID snowflake.ID) (int, error) {
	var count int
	err := DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reminders WHERE user_id = ?", userID.String()).Scan(&count)
	return count, err
}

func GetRemindersCount(ctx context.Context) (int, error) {
	var count int
	err := DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reminders").Scan(&count)
	return count, err
}

type reminderRows interface {
	Next() bool
	Scan(dest ...any) error
}

func scanReminders(rows reminderRows) ([]*Reminder, error) {
	var reminders []*Reminder
	for rows.Next() {
		r := &Reminder{}
		var uid, cid, gid string
		var remindAt int64
		if err := rows.Scan(&r.ID, &uid, &cid, &gid, &r.Message, &remindAt); err != nil {
			return nil, err
		}
		r.UserID, _ = snowflake.Parse(uid)
		r.ChannelID, _ = snowflake.Parse(cid)
		r.GuildID, _ = snowflake.Parse(gid)
		r.RemindAt = time.Unix(remindAt, 0).UTC()
		reminders = append(reminders, r)
	}
	return reminders, nil
}
