package sys

import (
	"context"
	"database/sql"

	"github.com/disgoorg/snowflake/v2"
)

// SetReactionRole binds (guild, message, emoji) to a role, replacing any
// previous binding for the triple.
func SetReactionRole(ctx context.Context, guildID, messageID snowflake.ID, emoji string, roleID snowflake.ID) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO reaction_roles (guild_id, message_id, emoji, role_id) VALUES (?, ?, ?, ?)
		ON CONFLICT(guild_id, message_id, emoji) DO UPDATE SET role_id = excluded.role_id
	`, guildID.String(), messageID.String(), emoji, roleID.String())
	return err
}

// GetReactionRole returns the bound role, or 0 when no binding exists.
func GetReactionRole(ctx context.Context, guildID, messageID snowflake.ID, emoji string) (snowflake.ID, error) {
	var roleIDStr string
	err := DB.QueryRowContext(ctx, `
		SELECT role_id FROM reaction_roles WHERE guild_id = ? AND message_id = ? AND emoji = ?
	`, guildID.String(), messageID.String(), emoji).Scan(&roleIDStr)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	roleID, _ := snowflake.Parse(roleIDStr)
	return roleID, nil
}

func DeleteReactionRole(ctx context.Context, guildID, messageID snowflake.ID, emoji string) (bool, error) {
	res, err := DB.ExecContext(ctx, `
		DELETE FROM reaction_roles WHERE guild_id = ? AND message_id = ? AND emoji = ?
	`, guildID.String(), messageID.String(), emoji)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}
