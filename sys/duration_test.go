package sys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationToken(t *testing.T) {
	tests := []struct {
		token string
		want  time.Duration
	}{
		{"10s", 10 * time.Second},
		{"1m", time.Minute},
		{"10m", 10 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"0s", 0},
		{"600m", 600 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDurationToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationTokenInvalid(t *testing.T) {
	tokens := []string{"", "m", "10", "10x", "-5m", "1.5h", "10M", "m10", "10mm", " 10m"}
	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, err := ParseDurationToken(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}
