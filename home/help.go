package home

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

const helpText = `**Bongosorous Help**

` + "`/ask`" + ` - Ask the AI
` + "`/help`" + ` - Show this menu
` + "`/trivia`" + ` - Play trivia
` + "`/rps`" + ` - Rock paper scissors
` + "`/poll`" + ` - Create a poll
` + "`/daily`" + ` - Claim daily coins
` + "`/balance`" + ` - Check coins
` + "`/give`" + ` - Give coins to someone
` + "`/rank`" + ` - Check your level
` + "`/leaderboard`" + ` - Top coin holders
` + "`/remind set 10m something`" + ` - Set a reminder`

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "help",
		Description: "Show the help menu",
	}, handleHelp)
}

func handleHelp(event *events.ApplicationCommandInteractionCreate) {
	if err := respondText(event, helpText, true); err != nil {
		sys.LogDebug("Failed to send help: %v", err)
	}
}
