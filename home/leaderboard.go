package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

const leaderboardSize = 10

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "leaderboard",
		Description: "Show the top coin holders",
	}, handleLeaderboard)
}

func handleLeaderboard(event *events.ApplicationCommandInteractionCreate) {
	entries, err := sys.TopBalances(sys.AppContext, leaderboardSize)
	if err != nil {
		sys.LogEconomy(sys.MsgEconomyStoreError, err)
		respondEconomyError(event)
		return
	}

	if len(entries) == 0 {
		if err := respondText(event, sys.MsgEconomyBoardEmpty, true); err != nil {
			sys.LogEconomy(sys.MsgEconomyRespondError, err)
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(sys.MsgEconomyLeaderboard)
	medals := []string{"🥇", "🥈", "🥉"}
	for i, e := range entries {
		marker := fmt.Sprintf("**%d.**", i+1)
		if i < len(medals) {
			marker = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s <@%s> — **%d** coins (level %d)\n", marker, e.UserID, e.Coins, e.Level))
	}

	if err := respondText(event, sb.String(), false); err != nil {
		sys.LogEconomy(sys.MsgEconomyRespondError, err)
	}
}
