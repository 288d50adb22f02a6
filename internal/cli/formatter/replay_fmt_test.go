package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/herald/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestFormatMatchLog(t *testing.T) {
	out := FormatMatchLog(&repository.MatchLog{
		ID:        "abc-123",
		ChannelID: "chan-9",
		Topic:     "gift-codes",
		Matched:   true,
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "gift-codes")
	assert.Contains(t, out, "chan-9")
	assert.Contains(t, out, "2026-08-30")
}

func TestFormatMatchLog_Unmatched(t *testing.T) {
	out := FormatMatchLog(&repository.MatchLog{
		ID:        "abc-456",
		ChannelID: "chan-9",
		CreatedAt: time.Now().UTC(),
	})

	assert.Contains(t, out, "no match")
}

func TestFormatReplay_Summary(t *testing.T) {
	out := FormatReplay([]ReplayResult{
		{Text: "any gift codes?", Topic: "gift-codes", Matched: true},
		{Text: "hello", Matched: false},
	})

	assert.Contains(t, out, "1/2 matched")
	assert.Contains(t, out, "gift-codes")
	assert.Contains(t, out, "no match")
}
