package home

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/Irfan-005/Bongosorous/sys"
)

const (
	pollMinOptions = 2
	pollMaxOptions = 5
)

var pollEmojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣"}

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "poll",
		Description: "Create a reaction poll",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "question",
				Description: "The poll question",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "options",
				Description: "2-5 comma-separated options",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "duration",
				Description: "How long the poll runs (like 5m or 1h, default 5m)",
				Required:    false,
			},
		},
	}, handlePoll)
}

func handlePoll(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	question := data.String("question")

	var options []string
	for _, o := range strings.Split(data.String("options"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}
	if len(options) < pollMinOptions || len(options) > pollMaxOptions {
		if err := respondText(event, sys.ErrPollBadOptions, true); err != nil {
			sys.LogDebug(sys.MsgPollRespondError, err)
		}
		return
	}

	duration := 5 * time.Minute
	if token, ok := data.OptString("duration"); ok {
		d, err := sys.ParseDurationToken(token)
		if err != nil {
			if err := respondText(event, sys.ErrReminderInvalidDuration, true); err != nil {
				sys.LogDebug(sys.MsgPollRespondError, err)
			}
			return
		}
		duration = d
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 **%s**\n\n", question))
	for i, o := range options {
		sb.WriteString(fmt.Sprintf("%s %s\n", pollEmojis[i], o))
	}
	sb.WriteString(fmt.Sprintf("\nPoll closes <t:%d:R>.", time.Now().Add(duration).Unix()))

	if err := event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContent(sb.String()).
		Build()); err != nil {
		sys.LogDebug(sys.MsgPollRespondError, err)
		return
	}

	client := event.Client()
	msg, err := client.Rest.GetInteractionResponse(event.ApplicationID(), event.Token())
	if err != nil {
		sys.LogDebug(sys.MsgPollRespondError, err)
		return
	}

	for i := range options {
		if err := client.Rest.AddReaction(msg.ChannelID, msg.ID, pollEmojis[i]); err != nil {
			sys.LogDebug(sys.MsgPollReactFail, err)
		}
	}

	channelID, messageID := msg.ChannelID, msg.ID
	sys.SafeGo(func() {
		timer := time.NewTimer(duration)
		defer timer.Stop()
		select {
		case <-sys.AppContext.Done():
			return
		case <-timer.C:
		}
		tallyPoll(event, channelID, messageID, question, options)
	})
}

// tallyPoll re-reads the poll message and posts the reaction counts. The
// bot's own seed reactions are excluded from each count.
func tallyPoll(event *events.ApplicationCommandInteractionCreate, channelID, messageID snowflake.ID, question string, options []string) {
	client := event.Client()
	msg, err := client.Rest.GetMessage(channelID, messageID)
	if err != nil {
		sys.LogDebug(sys.MsgPollTallyFail, err)
		return
	}

	counts := make([]int, len(options))
	for _, r := range msg.Reactions {
		for i := range options {
			if r.Emoji.Name == pollEmojis[i] {
				counts[i] = r.Count - 1
				if counts[i] < 0 {
					counts[i] = 0
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(sys.MsgPollResultHeader, question))
	for i, o := range options {
		sb.WriteString(fmt.Sprintf("%s %s — **%d**\n", pollEmojis[i], o, counts[i]))
	}

	if _, err := client.Rest.CreateMessage(channelID, discord.MessageCreate{
		Content: sb.String(),
	}); err != nil {
		sys.LogDebug(sys.MsgPollTallyFail, err)
	}
}
