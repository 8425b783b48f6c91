package home

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "give",
		Description: "Give coins to another user",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionUser{
				Name:        "user",
				Description: "Who receives the coins",
				Required:    true,
			},
			discord.ApplicationCommandOptionInt{
				Name:        "amount",
				Description: "How many coins to give",
				Required:    true,
			},
		},
	}, handleGive)
}

func handleGive(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()

	from := event.User().ID
	to := data.Snowflake("user")
	amount := int64(data.Int("amount"))

	if amount <= 0 {
		if err := respondText(event, sys.ErrEconomyBadAmount, true); err != nil {
			sys.LogEconomy(sys.MsgEconomyRespondError, err)
		}
		return
	}
	if to == from {
		if err := respondText(event, sys.ErrEconomySelfGive, true); err != nil {
			sys.LogEconomy(sys.MsgEconomyRespondError, err)
		}
		return
	}

	err := sys.TransferCoins(sys.AppContext, from, to, amount)
	if errors.Is(err, sys.ErrInsufficientBalance) {
		if err := respondText(event, sys.ErrEconomyInsufficient, true); err != nil {
			sys.LogEconomy(sys.MsgEconomyRespondError, err)
		}
		return
	}
	if err != nil {
		sys.LogEconomy(sys.MsgEconomyStoreError, err)
		respondEconomyError(event)
		return
	}

	sys.LogEconomy(sys.MsgEconomyTransferDone, amount, from, to)
	if err := respondText(event, fmt.Sprintf(sys.MsgEconomyGiveSuccess, amount, to), false); err != nil {
		sys.LogEconomy(sys.MsgEconomyRespondError, err)
	}
}
