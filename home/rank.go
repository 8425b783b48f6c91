package home

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "rank",
		Description: "Check a user's level and xp",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionUser{
				Name:        "user",
				Description: "Whose rank to check (default: you)",
				Required:    false,
			},
		},
	}, handleRank)
}

func handleRank(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()

	userID := event.User().ID
	if target, ok := data.OptSnowflake("user"); ok {
		userID = target
	}

	counters, err := sys.GetCounters(sys.AppContext, userID)
	if err != nil {
		sys.LogEconomy(sys.MsgEconomyStoreError, err)
		respondEconomyError(event)
		return
	}

	content := fmt.Sprintf(sys.MsgEconomyRank, userID, counters.Level, counters.XP)
	if err := respondText(event, content, false); err != nil {
		sys.LogEconomy(sys.MsgEconomyRespondError, err)
	}
}
