package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	adminPerm := discord.PermissionAdministrator
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "mod",
		Description:              "Moderation commands",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionSubCommand{
				Name:        "warn",
				Description: "Warn a user",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionUser{
						Name:        "user",
						Description: "Who to warn",
						Required:    true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "reason",
						Description: "Why the warning is issued",
						Required:    true,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "warnings",
				Description: "List a user's warnings",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionUser{
						Name:        "user",
						Description: "Whose warnings to list",
						Required:    true,
					},
				},
			},
		},
	}, handleMod)
}

func handleMod(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	if data.SubCommandName == nil || event.GuildID() == nil {
		return
	}

	switch *data.SubCommandName {
	case "warn":
		handleModWarn(event)
	case "warnings":
		handleModWarnings(event)
	}
}

func handleModWarn(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	guildID := *event.GuildID()
	target := data.Snowflake("user")
	reason := data.String("reason")

	inf := &sys.Infraction{
		GuildID:     guildID,
		UserID:      target,
		ModeratorID: event.User().ID,
		Reason:      reason,
	}
	if err := sys.AddInfraction(sys.AppContext, inf); err != nil {
		sys.LogMod(sys.MsgModStoreError, err)
		if err := respondText(event, sys.ErrModGeneric, true); err != nil {
			sys.LogMod(sys.MsgModRespondError, err)
		}
		return
	}

	sys.LogMod(sys.MsgModWarnLogged, target, guildID)
	if err := respondText(event, fmt.Sprintf(sys.MsgModWarnSuccess, target, reason), false); err != nil {
		sys.LogMod(sys.MsgModRespondError, err)
	}
}

func handleModWarnings(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	guildID := *event.GuildID()
	target := data.Snowflake("user")

	infractions, err := sys.GetInfractionsForUser(sys.AppContext, guildID, target)
	if err != nil {
		sys.LogMod(sys.MsgModStoreError, err)
		if err := respondText(event, sys.ErrModGeneric, true); err != nil {
			sys.LogMod(sys.MsgModRespondError, err)
		}
		return
	}

	if len(infractions) == 0 {
		if err := respondText(event, fmt.Sprintf(sys.MsgModNoWarnings, target), true); err != nil {
			sys.LogMod(sys.MsgModRespondError, err)
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(sys.MsgModWarningsHeader, target, len(infractions)))
	for _, inf := range infractions {
		sb.WriteString(fmt.Sprintf("**%d.** %s — by <@%s> (<t:%d:R>)\n", inf.ID, inf.Reason, inf.ModeratorID, inf.CreatedAt.Unix()))
	}

	if err := respondText(event, sb.String(), true); err != nil {
		sys.LogMod(sys.MsgModRespondError, err)
	}
}
