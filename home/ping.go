package home

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "ping",
		Description: "Check bot latency",
	}, handlePing)
}

func handlePing(event *events.ApplicationCommandInteractionCreate) {
	interTime := snowflake.ID(event.ID()).Time()
	latency := time.Since(interTime).Milliseconds()

	content := fmt.Sprintf("🏓 Pong! **Latency:** %dms", latency)
	if err := respondText(event, content, true); err != nil {
		sys.LogDebug("Failed to send ping: %v", err)
	}
}
