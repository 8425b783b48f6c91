package sys

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Infraction is an append-only moderation audit record.
type Infraction struct {
	ID          int64
	GuildID     snowflake.ID
	UserID      snowflake.ID
	ModeratorID snowflake.ID
	Reason      string
	CreatedAt   time.Time
}

func AddInfraction(ctx context.Context, inf *Infraction) error {
	res, err := DB.ExecContext(ctx, `
		INSERT INTO infractions (guild_id, user_id, moderator_id, reason)
		VALUES (?, ?, ?, ?)
	`, inf.GuildID.String(), inf.UserID.String(), inf.ModeratorID.String(), inf.Reason)
	if err != nil {
		return err
	}
	inf.ID, _ = res.LastInsertId()
	return nil
}

func GetInfractionsForUser(ctx context.Context, guildID, userID snowflake.ID) ([]*Infraction, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT id, guild_id, user_id, moderator_id, reason, created_at
		FROM infractions WHERE guild_id = ? AND user_id = ? ORDER BY id DESC
	`, guildID.String(), userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infractions []*Infraction
	for rows.Next() {
		inf := &Infraction{}
		var gid, uid, mid string
		if err := rows.Scan(&inf.ID, &gid, &uid, &mid, &inf.Reason, &inf.CreatedAt); err != nil {
			return nil, err
		}
		inf.GuildID, _ = snowflake.Parse(gid)
		inf.UserID, _ = snowflake.Parse(uid)
		inf.ModeratorID, _ = snowflake.Parse(mid)
		infractions = append(infractions, inf)
	}
	return infractions, rows.Err()
}
