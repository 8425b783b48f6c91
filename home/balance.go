package home

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "balance",
		Description: "Check a coin balance",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionUser{
				Name:        "user",
				Description: "Whose balance to check (default: you)",
				Required:    false,
			},
		},
	}, handleBalance)
}

func handleBalance(event *events.ApplicationCommandInteractionCreate) {
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

	content := fmt.Sprintf(sys.MsgEconomyBalance, userID, counters.Coins)
	if err := respondText(event, content, false); err != nil {
		sys.LogEconomy(sys.MsgEconomyRespondError, err)
	}
}

func respondEconomyError(event *events.ApplicationCommandInteractionCreate) {
	if err := respondText(event, sys.ErrEconomyGeneric, true); err != nil {
		sys.LogEconomy(sys.MsgEconomyRespondError, err)
	}
}
