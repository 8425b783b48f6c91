package sys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

var (
	// ErrAlreadyClaimed is returned when the daily cooldown has not elapsed.
	ErrAlreadyClaimed = errors.New("daily reward already claimed")
	// ErrInsufficientBalance is returned when a debit would overdraw the account.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// DailyCooldown is the minimum time between successful daily claims.
const DailyCooldown = 24 * time.Hour

// Counters is a user's persisted economy record. LastDaily is unix
// seconds, zero when the user has never claimed.
type Counters struct {
	UserID    snowflake.ID
	Coins     int64
	XP        int64
	Level     int64
	LastDaily int64
}

// EnsureUser lazily creates a zeroed counter row. Safe to call on every
// interaction.
func EnsureUser(ctx context.Context, userID snowflake.ID) error {
	_, err := DB.ExecContext(ctx, "INSERT OR IGNORE INTO users (user_id) VALUES (?)", userID.String())
	return err
}

func GetCounters(ctx context.Context, userID snowflake.ID) (*Counters, error) {
	c := &Counters{UserID: userID}
	err := DB.QueryRowContext(ctx, `
		SELECT coins, xp, level, last_daily FROM users WHERE user_id = ?
	`, userID.String()).Scan(&c.Coins, &c.XP, &c.Level, &c.LastDaily)
	if err == sql.ErrNoRows {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AdjustCoins atomically adds delta (which may be negative) to the user's
// balance and returns the result. Debits that must not overdraw should go
// through SpendCoins instead.
func AdjustCoins(ctx context.Context, userID snowflake.ID, delta int64) (int64, error) {
	if err := EnsureUser(ctx, userID); err != nil {
		return 0, err
	}
	var balance int64
	err := DB.QueryRowContext(ctx, `
		UPDATE users SET coins = coins + ? WHERE user_id = ? RETURNING coins
	`, delta, userID.String()).Scan(&balance)
	return balance, err
}

// SpendCoins atomically debits amount, refusing the debit when the balance
// is short. The balance guard lives in the UPDATE itself so two concurrent
// debits can never both pass a stale pre-check.
func SpendCoins(ctx context.Context, userID snowflake.ID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("spend amount must be non-negative, got %d", amount)
	}
	if err := EnsureUser(ctx, userID); err != nil {
		return 0, err
	}
	var balance int64
	err := DB.QueryRowContext(ctx, `
		UPDATE users SET coins = coins - ? WHERE user_id = ? AND coins >= ? RETURNING coins
	`, amount, userID.String(), amount).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrInsufficientBalance
	}
	return balance, err
}

// AwardXP adds amount to the user's xp and recomputes the derived level
// (floor of the square root of xp) in the same transaction, so the pair is
// never observed stale. Returns the new level and whether it increased.
func AwardXP(ctx context.Context, userID snowflake.ID, amount int64) (int64, bool, error) {
	if err := EnsureUser(ctx, userID); err != nil {
		return 0, false, err
	}

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback()

	var xp, oldLevel int64
	err = tx.QueryRowContext(ctx, `
		UPDATE users SET xp = xp + ? WHERE user_id = ? RETURNING xp, level
	`, amount, userID.String()).Scan(&xp, &oldLevel)
	if err != nil {
		return 0, false, err
	}

	newLevel := int64(math.Sqrt(float64(xp)))
	if newLevel != oldLevel {
		if _, err := tx.ExecContext(ctx, "UPDATE users SET level = ? WHERE user_id = ?", newLevel, userID.String()); err != nil {
			return 0, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}
	return newLevel, newLevel > oldLevel, nil
}

// ClaimDaily grants reward coins at most once per cooldown period. The
// cooldown check and the grant are one transaction, so duplicate events
// (double clicks, gateway redelivery) cannot double-spend. On
// ErrAlreadyClaimed the returned duration is the time left on the cooldown.
func ClaimDaily(ctx context.Context, userID snowflake.ID, now time.Time, cooldown time.Duration, reward int64) (int64, time.Duration, error) {
	if err := EnsureUser(ctx, userID); err != nil {
		return 0, 0, err
	}

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	var lastDaily int64
	if err := tx.QueryRowContext(ctx, "SELECT last_daily FROM users WHERE user_id = ?", userID.String()).Scan(&lastDaily); err != nil {
		return 0, 0, err
	}

	elapsed := now.Unix() - lastDaily
	if lastDaily != 0 && elapsed < int64(cooldown.Seconds()) {
		remaining := time.Duration(int64(cooldown.Seconds())-elapsed) * time.Second
		return 0, remaining, ErrAlreadyClaimed
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET coins = coins + ?, last_daily = ? WHERE user_id = ?
	`, reward, now.Unix(), userID.String()); err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return reward, 0, nil
}

// TransferCoins moves amount between two users in a single transaction:
// either both rows change or neither does. The debit carries the same
// balance guard as SpendCoins.
func TransferCoins(ctx context.Context, from, to snowflake.ID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d", amount)
	}
	if err := EnsureUser(ctx, from); err != nil {
		return err
	}
	if err := EnsureUser(ctx, to); err != nil {
		return err
	}

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE users SET coins = coins - ? WHERE user_id = ? AND coins >= ?
	`, amount, from.String(), amount)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err != nil {
		return err
	} else if rows == 0 {
		return ErrInsufficientBalance
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET coins = coins + ? WHERE user_id = ?
	`, amount, to.String()); err != nil {
		return err
	}

	return tx.Commit()
}

// LeaderboardEntry is one row of the coin leaderboard.
type LeaderboardEntry struct {
	UserID snowflake.ID
	Coins  int64
	Level  int64
}

func TopBalances(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT user_id, coins, level FROM users ORDER BY coins DESC, user_id ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var uid string
		if err := rows.Scan(&uid, &e.Coins, &e.Level); err != nil {
			return nil, err
		}
		e.UserID, _ = snowflake.Parse(uid)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
