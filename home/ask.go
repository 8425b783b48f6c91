package home

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/time/rate"

	"github.com/Irfan-005/Bongosorous/sys"
)

const (
	hfChatCompletionsURL = "https://router.huggingface.co/v1/chat/completions"
	askTimeout           = 30 * time.Second
	askMaxResponseChars  = 1900
)

var (
	askLimitersMu sync.Mutex
	askLimiters   = make(map[snowflake.ID]*rate.Limiter)

	// askClient allows slower completions than the shared sys.HttpClient.
	askClient = &http.Client{Timeout: askTimeout}
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "ask",
		Description: "Ask the AI a question",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "question",
				Description: "What to ask",
				Required:    true,
			},
		},
	}, handleAsk)
}

// askLimiter returns the per-user limiter, one request per 10s with a
// burst of 2.
func askLimiter(userID snowflake.ID) *rate.Limiter {
	askLimitersMu.Lock()
	defer askLimitersMu.Unlock()
	if l, ok := askLimiters[userID]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Every(10*time.Second), 2)
	askLimiters[userID] = l
	return l
}

func handleAsk(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	question := data.String("question")

	if sys.GlobalConfig == nil || sys.GlobalConfig.HFAPIKey == "" {
		if err := respondText(event, sys.ErrAIDisabled, true); err != nil {
			sys.LogAI(sys.MsgAIRespondError, err)
		}
		return
	}

	if !askLimiter(event.User().ID).Allow() {
		if err := respondText(event, sys.ErrAIRateLimited, true); err != nil {
			sys.LogAI(sys.MsgAIRespondError, err)
		}
		return
	}

	if err := event.DeferCreateMessage(false); err != nil {
		sys.LogAI(sys.MsgAIRespondError, err)
		return
	}

	answer, err := askModel(sys.AppContext, question)
	if err != nil {
		sys.LogAI(sys.MsgAIRequestFailed, err)
		msg := sys.ErrAIFailed
		if errors.Is(err, context.DeadlineExceeded) {
			msg = sys.ErrAITimeout
		}
		if err := updateText(event, msg); err != nil {
			sys.LogAI(sys.MsgAIRespondError, err)
		}
		return
	}

	if len(answer) > askMaxResponseChars {
		answer = answer[:askMaxResponseChars] + "…"
	}
	if err := updateText(event, answer); err != nil {
		sys.LogAI(sys.MsgAIRespondError, err)
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// askModel sends the question to the configured chat completion endpoint.
func askModel(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: sys.GlobalConfig.HFModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful Discord bot. Keep answers short."},
			{Role: "user", Content: question},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hfChatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+sys.GlobalConfig.HFAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := askClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %s", resp.Status)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion endpoint returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
