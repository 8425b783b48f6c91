package sys

import (
	"context"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionRoleBindings(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	guild := snowflake.ID(100)
	message := snowflake.ID(200)

	require.NoError(t, SetReactionRole(ctx, guild, message, "👍", snowflake.ID(300)))

	roleID, err := GetReactionRole(ctx, guild, message, "👍")
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(300), roleID)

	// Re-binding the same emoji replaces the role
	require.NoError(t, SetReactionRole(ctx, guild, message, "👍", snowflake.ID(301)))
	roleID, err = GetReactionRole(ctx, guild, message, "👍")
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(301), roleID)

	// Unknown bindings resolve to zero
	roleID, err = GetReactionRole(ctx, guild, message, "👎")
	require.NoError(t, err)
	assert.Zero(t, roleID)

	removed, err := DeleteReactionRole(ctx, guild, message, "👍")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = DeleteReactionRole(ctx, guild, message, "👍")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestBotConfigRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	value, err := GetBotConfig(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, SetBotConfig(ctx, "last_cmd_hash", "abc123"))
	require.NoError(t, SetBotConfig(ctx, "last_cmd_hash", "def456"))

	value, err = GetBotConfig(ctx, "last_cmd_hash")
	require.NoError(t, err)
	assert.Equal(t, "def456", value)
}
