package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"
	"github.com/disgoorg/snowflake/v2"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	adminPerm := discord.PermissionAdministrator
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "reactionrole",
		Description:              "Bind reactions on a message to roles",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionSubCommand{
				Name:        "set",
				Description: "Grant a role when users react with an emoji",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:        "message_id",
						Description: "The message to watch",
						Required:    true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "emoji",
						Description: "The emoji to watch for",
						Required:    true,
					},
					discord.ApplicationCommandOptionRole{
						Name:        "role",
						Description: "The role to grant",
						Required:    true,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "remove",
				Description: "Remove a reaction role binding",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:        "message_id",
						Description: "The watched message",
						Required:    true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "emoji",
						Description: "The bound emoji",
						Required:    true,
					},
				},
			},
		},
	}, handleReactionRole)
	sys.RegisterReactionAddHandler(handleReactionGrant)
	sys.RegisterReactionRemoveHandler(handleReactionRevoke)
}

// normalizeEmoji reduces both typed emoji ("<a:name:id>" or a plain
// unicode emoji) and gateway emoji payloads to the stored "name:id" or
// bare-name form.
func normalizeEmoji(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">") {
		raw = strings.Trim(raw, "<>")
		raw = strings.TrimPrefix(raw, "a")
		raw = strings.TrimPrefix(raw, ":")
	}
	return raw
}

func reactionEmojiString(emoji discord.PartialEmoji) string {
	name := ""
	if emoji.Name != nil {
		name = *emoji.Name
	}
	if emoji.ID != nil {
		return fmt.Sprintf("%s:%s", name, emoji.ID.String())
	}
	return name
}

func handleReactionRole(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	if data.SubCommandName == nil || event.GuildID() == nil {
		return
	}
	guildID := *event.GuildID()

	messageID, err := snowflake.Parse(data.String("message_id"))
	if err != nil {
		if err := respondText(event, sys.ErrRolesBadMessageID, true); err != nil {
			sys.LogRoles(sys.MsgRolesRespondError, err)
		}
		return
	}
	emoji := normalizeEmoji(data.String("emoji"))

	switch *data.SubCommandName {
	case "set":
		roleID := data.Snowflake("role")
		if err := sys.SetReactionRole(sys.AppContext, guildID, messageID, emoji, roleID); err != nil {
			sys.LogRoles(sys.MsgRolesBindFail, err)
			if err := respondText(event, sys.ErrRolesGeneric, true); err != nil {
				sys.LogRoles(sys.MsgRolesRespondError, err)
			}
			return
		}
		if err := respondText(event, fmt.Sprintf(sys.MsgRolesBound, data.String("emoji"), roleID), true); err != nil {
			sys.LogRoles(sys.MsgRolesRespondError, err)
		}

	case "remove":
		removed, err := sys.DeleteReactionRole(sys.AppContext, guildID, messageID, emoji)
		if err != nil {
			sys.LogRoles(sys.MsgRolesBindFail, err)
			if err := respondText(event, sys.ErrRolesGeneric, true); err != nil {
				sys.LogRoles(sys.MsgRolesRespondError, err)
			}
			return
		}
		msg := sys.MsgRolesUnbound
		if !removed {
			msg = sys.ErrRolesNotFound
		}
		if err := respondText(event, msg, true); err != nil {
			sys.LogRoles(sys.MsgRolesRespondError, err)
		}
	}
}

func handleReactionGrant(event *events.MessageReactionAdd) {
	if event.GuildID == nil {
		return
	}
	if event.Member != nil && event.Member.User.Bot {
		return
	}
	guildID := *event.GuildID

	roleID, err := sys.GetReactionRole(sys.AppContext, guildID, event.MessageID, reactionEmojiString(event.Emoji))
	if err != nil || roleID == 0 {
		return
	}

	if err := event.Client().Rest.AddMemberRole(guildID, event.UserID, roleID); err != nil {
		sys.LogRoles(sys.MsgRolesGrantFail, roleID, event.UserID, err)
	}
}

func handleReactionRevoke(event *events.MessageReactionRemove) {
	if event.GuildID == nil {
		return
	}
	guildID := *event.GuildID

	roleID, err := sys.GetReactionRole(sys.AppContext, guildID, event.MessageID, reactionEmojiString(event.Emoji))
	if err != nil || roleID == 0 {
		return
	}

	if err := event.Client().Rest.RemoveMemberRole(guildID, event.UserID, roleID); err != nil {
		sys.LogRoles(sys.MsgRolesRevokeFail, roleID, event.UserID, err)
	}
}
