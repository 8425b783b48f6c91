package sys

import (
	"context"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfractions(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	guild := snowflake.ID(100)
	user := snowflake.ID(1)
	mod := snowflake.ID(2)

	first := &Infraction{GuildID: guild, UserID: user, ModeratorID: mod, Reason: "spam"}
	require.NoError(t, AddInfraction(ctx, first))
	assert.NotZero(t, first.ID)

	second := &Infraction{GuildID: guild, UserID: user, ModeratorID: mod, Reason: "more spam"}
	require.NoError(t, AddInfraction(ctx, second))

	// Newest first
	infractions, err := GetInfractionsForUser(ctx, guild, user)
	require.NoError(t, err)
	require.Len(t, infractions, 2)
	assert.Equal(t, "more spam", infractions[0].Reason)
	assert.Equal(t, mod, infractions[0].ModeratorID)

	// Scoped to the guild
	infractions, err = GetInfractionsForUser(ctx, snowflake.ID(999), user)
	require.NoError(t, err)
	assert.Empty(t, infractions)
}
