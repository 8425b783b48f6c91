package home

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/Irfan-005/Bongosorous/sys"
)

const (
	triviaReward  = 25
	triviaExpires = 60 * time.Second
)

type triviaQuestion struct {
	Question string
	Answer   string
}

var triviaBank = []triviaQuestion{
	{"What is the largest planet in our solar system?", "jupiter"},
	{"How many continents are there?", "7"},
	{"What is the chemical symbol for gold?", "au"},
	{"What year did the first human walk on the moon?", "1969"},
	{"What is the smallest prime number?", "2"},
	{"Which ocean is the deepest?", "pacific"},
	{"How many sides does a hexagon have?", "6"},
	{"What is the capital of Japan?", "tokyo"},
	{"Which planet is known as the red planet?", "mars"},
	{"What does CPU stand for?", "central processing unit"},
}

type triviaSession struct {
	Question triviaQuestion
	AskedAt  time.Time
}

var (
	triviaMu       sync.Mutex
	triviaSessions = make(map[snowflake.ID]*triviaSession)
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "trivia",
		Description: "Start a trivia question in this channel",
	}, handleTrivia)
	sys.RegisterMessageCreateHandler(handleTriviaAnswer)
}

func handleTrivia(event *events.ApplicationCommandInteractionCreate) {
	channelID := event.Channel().ID()
	q := triviaBank[rand.Intn(len(triviaBank))]

	triviaMu.Lock()
	if s, ok := triviaSessions[channelID]; ok && time.Since(s.AskedAt) < triviaExpires {
		triviaMu.Unlock()
		if err := respondText(event, sys.MsgTriviaActive, true); err != nil {
			sys.LogTrivia(sys.MsgTriviaRespondError, err)
		}
		return
	}
	triviaSessions[channelID] = &triviaSession{Question: q, AskedAt: time.Now()}
	triviaMu.Unlock()

	if err := respondText(event, fmt.Sprintf(sys.MsgTriviaQuestion, q.Question), false); err != nil {
		sys.LogTrivia(sys.MsgTriviaRespondError, err)
	}
}

func handleTriviaAnswer(event *events.MessageCreate) {
	if event.Message.Author.Bot {
		return
	}

	guess := strings.ToLower(strings.TrimSpace(event.Message.Content))
	if guess == "" {
		return
	}

	triviaMu.Lock()
	s, ok := triviaSessions[event.ChannelID]
	if !ok {
		triviaMu.Unlock()
		return
	}
	if time.Since(s.AskedAt) >= triviaExpires {
		delete(triviaSessions, event.ChannelID)
		triviaMu.Unlock()
		return
	}
	if guess != s.Question.Answer {
		triviaMu.Unlock()
		return
	}
	delete(triviaSessions, event.ChannelID)
	triviaMu.Unlock()

	userID := event.Message.Author.ID
	if _, err := sys.AdjustCoins(sys.AppContext, userID, triviaReward); err != nil {
		sys.LogTrivia(sys.MsgEconomyStoreError, err)
		return
	}

	content := fmt.Sprintf(sys.MsgTriviaCorrect, userID, triviaReward)
	if _, err := event.Client().Rest.CreateMessage(event.ChannelID, discord.MessageCreate{
		Content: content,
	}); err != nil {
		sys.LogTrivia(sys.MsgTriviaRespondError, err)
	}
}
