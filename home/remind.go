package home

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sho0pi/naturaltime"

	"github.com/Irfan-005/Bongosorous/sys"
)

var reminderParser *naturaltime.Parser

func init() {
	var err error
	reminderParser, err = naturaltime.New()
	if err != nil {
		sys.LogFatal("Failed to init natural time parser: %v", err)
	}

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "remind",
		Description: "Manage reminders",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionSubCommand{
				Name:        "set",
				Description: "Set a new reminder",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:        "when",
						Description: "When to remind (like 10m, 2h, 1d, or 'tomorrow at 9am')",
						Required:    true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "message",
						Description: "The reminder message",
						Required:    true,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "list",
				Description: "List and dismiss reminders",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:         "dismiss",
						Description:  "Select a reminder to dismiss",
						Required:     false,
						Autocomplete: true,
					},
				},
			},
		},
	}, handleRemind)

	sys.RegisterAutocompleteHandler("remind", handleRemindAutocomplete)
}

func handleRemind(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	if data.SubCommandName == nil {
		return
	}

	switch *data.SubCommandName {
	case "set":
		handleRemindSet(event, data)
	case "list":
		handleRemindList(event, data)
	}
}

func respondReminder(event *events.ApplicationCommandInteractionCreate, content string) {
	if err := respondText(event, content, true); err != nil {
		sys.LogReminder(sys.MsgReminderRespondError, err)
	}
}

func handleRemindSet(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	whenStr := data.String("when")
	message := data.String("message")

	userID := event.User().ID
	channelID := event.Channel().ID()
	var guildID snowflake.ID
	if event.GuildID() != nil {
		guildID = *event.GuildID()
	}

	now := time.Now().UTC()

	// Compact tokens like "10m" are the primary form; everything else
	// falls back to the natural language parser.
	dueAt, err := sys.ScheduleReminder(sys.AppContext, userID, channelID, guildID, whenStr, message, now)
	if errors.Is(err, sys.ErrInvalidDuration) {
		parsed, perr := parseNaturalTime(whenStr, now)
		if perr != nil {
			respondReminder(event, sys.ErrReminderInvalidDuration)
			return
		}
		if !parsed.After(now) {
			respondReminder(event, sys.ErrReminderPastTime)
			return
		}
		dueAt = parsed
		err = sys.AddReminder(sys.AppContext, &sys.Reminder{
			UserID:    userID,
			ChannelID: channelID,
			GuildID:   guildID,
			Message:   message,
			RemindAt:  dueAt,
		})
	}
	if err != nil {
		sys.LogReminder(sys.MsgReminderFailedToSave, err)
		respondReminder(event, sys.ErrReminderSaveFailed)
		return
	}

	respondReminder(event, fmt.Sprintf(sys.MsgReminderSetSuccess, message, dueAt.Unix(), dueAt.Unix()))
}

func parseNaturalTime(input string, now time.Time) (time.Time, error) {
	result, err := reminderParser.ParseDate(input, now)
	if err == nil && result != nil {
		return *result, nil
	}
	return time.Time{}, fmt.Errorf("could not parse time: %s", input)
}

func handleRemindList(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	userID := event.User().ID

	if dismissIDStr, ok := data.OptString("dismiss"); ok {
		if dismissIDStr == "all" {
			count, err := sys.DeleteAllRemindersForUser(sys.AppContext, userID)
			if err != nil {
				sys.LogReminder(sys.MsgReminderFailedToDeleteAll, err)
				respondReminder(event, sys.ErrReminderDismissFailed)
				return
			}
			respondReminder(event, fmt.Sprintf(sys.MsgReminderDismissedBatch, count))
			return
		}

		if dismissID, err := strconv.ParseInt(dismissIDStr, 10, 64); err == nil {
			deleted, err := sys.DeleteReminder(sys.AppContext, dismissID, userID)
			if err != nil || !deleted {
				respondReminder(event, sys.ErrReminderDismissFailed)
				return
			}
			respondReminder(event, sys.MsgReminderDismissed)
			return
		}
	}

	reminders, err := sys.GetRemindersForUser(sys.AppContext, userID)
	if err != nil {
		sys.LogReminder(sys.MsgReminderFailedToQuery, err)
		respondReminder(event, sys.ErrReminderFetchFailed)
		return
	}

	if len(reminders) == 0 {
		respondReminder(event, sys.MsgReminderNoActive)
		return
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf(sys.MsgReminderListHeader, len(reminders)))
	for i, r := range reminders {
		content.WriteString(fmt.Sprintf(sys.MsgReminderListItem, i+1, truncate(r.Message, 50), fmt.Sprintf("<t:%d:R>", r.RemindAt.Unix())))
	}

	respondReminder(event, content.String())
}

func handleRemindAutocomplete(event *events.AutocompleteInteractionCreate) {
	focusedValue := ""
	for _, opt := range event.Data.Options {
		if opt.Focused {
			focusedValue = strings.ToLower(opt.String())
			break
		}
	}

	userID := event.User().ID
	reminders, err := sys.GetRemindersForUser(sys.AppContext, userID)
	if err != nil {
		sys.LogReminder(sys.MsgReminderAutocompleteFailed, err)
		return
	}

	var choices []discord.AutocompleteChoice
	if len(reminders) > 1 {
		allName := fmt.Sprintf(sys.MsgReminderChoiceAll, len(reminders))
		if focusedValue == "" || strings.Contains(strings.ToLower(allName), focusedValue) {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  allName,
				Value: "all",
			})
		}
	}

	for _, r := range reminders {
		displayName := truncate(r.Message, 80)
		if focusedValue == "" || strings.Contains(strings.ToLower(displayName), focusedValue) {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  displayName,
				Value: strconv.FormatInt(r.ID, 10),
			})
		}
		if len(choices) >= 25 {
			break
		}
	}

	_ = event.AutocompleteResult(choices)
}

// truncate shortens s to maxLen with a trailing ellipsis.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
