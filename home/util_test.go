package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmoji(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"👍", "👍"},
		{" 👍 ", "👍"},
		{"<:blob:123456789>", "blob:123456789"},
		{"<a:party:987654321>", "party:987654321"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeEmoji(tt.in))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "this is...", truncate("this is too long", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestRPSBeats(t *testing.T) {
	// Every choice beats exactly one other choice
	assert.Equal(t, "scissors", rpsBeats["rock"])
	assert.Equal(t, "rock", rpsBeats["paper"])
	assert.Equal(t, "paper", rpsBeats["scissors"])
	for _, c := range rpsChoices {
		_, ok := rpsBeats[c]
		assert.True(t, ok)
	}
}
