package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// MatchLog records which topic (if any) fired for one inbound message.
// Only the topic name and channel are kept, never the message content.
type MatchLog struct {
	ID        string
	ChannelID string
	Topic     string
	Matched   bool
	CreatedAt time.Time
}

// TopicCount is one row of a per-topic match tally.
type TopicCount struct {
	Topic string
	Count int
}

// MatchLogRepo persists and queries match-log rows.
type MatchLogRepo interface {
	Create(ctx context.Context, m *MatchLog) error
	GetByID(ctx context.Context, id string) (*MatchLog, error)
	ListRecent(ctx context.Context, days int) ([]*MatchLog, error)
	CountByTopic(ctx context.Context) ([]TopicCount, error)
}
