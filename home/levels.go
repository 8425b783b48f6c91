package home

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/Irfan-005/Bongosorous/sys"
)

// xpCooldown throttles xp gains so spamming messages doesn't pay.
const xpCooldown = 60 * time.Second

var (
	xpMutex    sync.Mutex
	xpLastSeen = make(map[snowflake.ID]time.Time)
)

func init() {
	sys.RegisterMessageCreateHandler(handleXPMessage)
}

func handleXPMessage(event *events.MessageCreate) {
	if event.Message.Author.Bot || event.GuildID == nil {
		return
	}

	userID := event.Message.Author.ID
	now := time.Now()

	xpMutex.Lock()
	if last, ok := xpLastSeen[userID]; ok && now.Sub(last) < xpCooldown {
		xpMutex.Unlock()
		return
	}
	xpLastSeen[userID] = now
	xpMutex.Unlock()

	amount := int64(1 + rand.Intn(3))
	newLevel, leveledUp, err := sys.AwardXP(sys.AppContext, userID, amount)
	if err != nil {
		sys.LogLevels(sys.MsgLevelsAwardFail, userID, err)
		return
	}
	if !leveledUp {
		return
	}

	content := fmt.Sprintf(sys.MsgEconomyLevelUp, userID, newLevel)
	if _, err := event.Client().Rest.CreateMessage(event.ChannelID, discord.MessageCreate{
		Content: content,
	}); err != nil {
		sys.LogLevels(sys.MsgLevelsAnnounceFail, err)
	}
}
