package timetext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"days and hours", "2 days 3 hours", 2*86400 + 3*3600},
		{"all units", "1 day 2 hours 30 minutes", 86400 + 2*3600 + 30*60},
		{"reversed order", "45 minutes 1 hour", 3600 + 45*60},
		{"singular", "1 day", 86400},
		{"no space before unit", "3days", 3 * 86400},
		{"mixed case", "2 Days 1 Hour", 2*86400 + 3600},
		{"unrecognized text", "soon-ish", 0},
		{"empty", "", 0},
		{"bare number", "42", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSeconds(tt.text))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0 minutes"},
		{"sub-minute remainder discarded", 59, "0 minutes"},
		{"single minute", 60, "1 minute"},
		{"single hour", 3600, "1 hour"},
		{"single day", 86400, "1 day"},
		{"full spread", 86400 + 3*3600 + 5*60, "1 day, 3 hours, 5 minutes"},
		{"hours skipped", 2*86400 + 10*60, "2 days, 10 minutes"},
		{"plurals", 2*86400 + 2*3600 + 2*60, "2 days, 2 hours, 2 minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
		})
	}
}

// Whole-minute durations survive a full round trip; only sub-minute
// precision is lossy.
func TestRoundTripWholeMinutes(t *testing.T) {
	for _, s := range []int{60, 3600, 86400, 183600, 2*86400 + 3*3600 + 45*60} {
		assert.Equal(t, s, ParseSeconds(FormatSeconds(s)), "seconds=%d", s)
	}
}

func TestScaleSeconds(t *testing.T) {
	// 2 days 3 hours at a 20% speed bonus.
	assert.Equal(t, 153000, ScaleSeconds(183600, 20))
	// Rounds to nearest, not floor.
	assert.Equal(t, 67, ScaleSeconds(100, 50))
	assert.Equal(t, 50, ScaleSeconds(100, 100))
}

func TestScaledFormatScenario(t *testing.T) {
	base := ParseSeconds("2 days 3 hours")
	assert.Equal(t, 183600, base)
	assert.Equal(t, "1 day, 18 hours, 30 minutes", FormatSeconds(ScaleSeconds(base, 20)))
}
