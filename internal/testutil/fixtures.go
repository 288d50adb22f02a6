package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/herald/internal/repository"
	"github.com/alexanderramin/herald/internal/store"
	"github.com/google/uuid"
)

// RequirementFixture is a minimal requirement table covering the common
// test levels. Level 5's duration is the canonical "2 days 3 hours" row.
const RequirementFixture = `Level|Prerequisites|Bread|Wood|Coal|Iron|Upgrade Time
2|None|100|100|0|0|5 minutes
5|TC4|100|200|50|10|2 days 3 hours
6|TC5, Embassy 5|1.2M|1.2M|240K|60K|3 days
`

// PromoFixture holds two well-formed gift code lines.
const PromoFixture = "ABC123 2025-01-01\nXYZ999 2025-03-15\n"

// NewTestRequirements parses RequirementFixture into a store.
func NewTestRequirements(t *testing.T) *store.Requirements {
	t.Helper()
	s, err := store.ParseRequirements(strings.NewReader(RequirementFixture))
	if err != nil {
		t.Fatalf("parsing requirement fixture: %v", err)
	}
	return s
}

// NewTestPromos parses PromoFixture into a store.
func NewTestPromos(t *testing.T) *store.Promos {
	t.Helper()
	s, err := store.ParsePromos(strings.NewReader(PromoFixture))
	if err != nil {
		t.Fatalf("parsing promo fixture: %v", err)
	}
	return s
}

// MatchLogOption mutates a fixture MatchLog.
type MatchLogOption func(*repository.MatchLog)

// WithTopic sets the topic name.
func WithTopic(topic string) MatchLogOption {
	return func(m *repository.MatchLog) {
		m.Topic = topic
	}
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(t time.Time) MatchLogOption {
	return func(m *repository.MatchLog) {
		m.CreatedAt = t
	}
}

// Unmatched marks the log row as a no-match outcome.
func Unmatched() MatchLogOption {
	return func(m *repository.MatchLog) {
		m.Matched = false
		m.Topic = ""
	}
}

// NewTestMatchLog builds a matched log row with sensible defaults.
func NewTestMatchLog(channelID string, opts ...MatchLogOption) *repository.MatchLog {
	m := &repository.MatchLog{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		Topic:     "gift-codes",
		Matched:   true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
