package home

import (
	"fmt"
	"math/rand"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/Irfan-005/Bongosorous/sys"
)

var rpsChoices = []string{"rock", "paper", "scissors"}

// rpsBeats maps each choice to the choice it defeats.
var rpsBeats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "rps",
		Description: "Play rock paper scissors against the bot",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "choice",
				Description: "Your move",
				Required:    true,
				Choices: []discord.ApplicationCommandOptionChoiceString{
					{Name: "rock", Value: "rock"},
					{Name: "paper", Value: "paper"},
					{Name: "scissors", Value: "scissors"},
				},
			},
		},
	}, handleRPS)
}

func handleRPS(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	player := data.String("choice")

	if _, ok := rpsBeats[player]; !ok {
		if err := respondText(event, sys.ErrRPSBadChoice, true); err != nil {
			sys.LogDebug("Failed to respond to rps: %v", err)
		}
		return
	}

	bot := rpsChoices[rand.Intn(len(rpsChoices))]

	outcome := sys.MsgRPSTie
	switch {
	case rpsBeats[player] == bot:
		outcome = sys.MsgRPSWin
	case rpsBeats[bot] == player:
		outcome = sys.MsgRPSLose
	}

	content := fmt.Sprintf(sys.MsgRPSResult, player, bot, outcome)
	if err := respondText(event, content, false); err != nil {
		sys.LogDebug("Failed to respond to rps: %v", err)
	}
}
