package home

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

const (
	dailyRewardMin = 50
	dailyRewardMax = 150
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "daily",
		Description: "Claim your daily coins",
	}, handleDaily)
}

func handleDaily(event *events.ApplicationCommandInteractionCreate) {
	userID := event.User().ID
	reward := int64(dailyRewardMin + rand.Intn(dailyRewardMax-dailyRewardMin+1))

	granted, remaining, err := sys.ClaimDaily(sys.AppContext, userID, time.Now().UTC(), sys.DailyCooldown, reward)
	if errors.Is(err, sys.ErrAlreadyClaimed) {
		if err := respondText(event, fmt.Sprintf(sys.MsgEconomyDailyWait, remaining.Round(time.Minute)), true); err != nil {
			sys.LogEconomy(sys.MsgEconomyRespondError, err)
		}
		return
	}
	if err != nil {
		sys.LogEconomy(sys.MsgEconomyStoreError, err)
		respondEconomyError(event)
		return
	}

	sys.LogEconomy(sys.MsgEconomyDailyClaimed, userID, granted)
	if err := respondText(event, fmt.Sprintf(sys.MsgEconomyDailyReward, granted), false); err != nil {
		sys.LogEconomy(sys.MsgEconomyRespondError, err)
	}
}
