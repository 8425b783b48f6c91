package home

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
)

// respondText answers an interaction with a V2 container message. Errors
// are returned so callers can log them with their component logger.
func respondText(event *events.ApplicationCommandInteractionCreate, content string, ephemeral bool) error {
	return event.CreateMessage(discord.NewMessageCreateBuilder().
		SetIsComponentsV2(true).
		AddComponents(
			discord.NewContainer(
				discord.NewTextDisplay(content),
			),
		).
		SetEphemeral(ephemeral).
		Build())
}

// updateText replaces a deferred interaction response with plain text.
func updateText(event *events.ApplicationCommandInteractionCreate, content string) error {
	_, err := event.Client().Rest.UpdateInteractionResponse(event.ApplicationID(), event.Token(),
		discord.NewMessageUpdateBuilder().
			SetIsComponentsV2(true).
			AddComponents(
				discord.NewContainer(
					discord.NewTextDisplay(content),
				),
			).
			Build())
	return err
}
