// Package gateway connects the classifier to a chat platform. The
// platform client lives behind the Sender interface so the core stays
// free of any chat-platform types.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/herald/internal/classify"
	"github.com/alexanderramin/herald/internal/domain"
	"github.com/alexanderramin/herald/internal/repository"
	"github.com/alexanderramin/herald/internal/store"
	"github.com/google/uuid"
)

// Reactions attached to every delivered card, in order.
var ackReactions = []string{"👍", "👎"}

// Sender delivers cards into a channel and decorates sent messages.
type Sender interface {
	SendCard(ctx context.Context, channelID string, card *domain.ResponseCard) (messageID string, err error)
	React(ctx context.Context, channelID, messageID, emoji string) error
}

// Dispatcher gates inbound messages, classifies them, and hands matched
// cards to the Sender. Channel gating and self-message suppression live
// here, not in the classifier.
type Dispatcher struct {
	classifier *classify.Classifier
	sender     Sender
	allowlist  *store.Allowlist
	selfID     string
	probeID    string
	matchLog   repository.MatchLogRepo
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithAllowlist restricts handling to the listed channels. Without it,
// every channel is eligible.
func WithAllowlist(a *store.Allowlist) Option {
	return func(d *Dispatcher) { d.allowlist = a }
}

// WithProbeAuthor exempts one bot author from self-message suppression,
// so an external liveness prober can exercise the full pipeline.
func WithProbeAuthor(authorID string) Option {
	return func(d *Dispatcher) { d.probeID = authorID }
}

// WithMatchLog enables best-effort topic match recording.
func WithMatchLog(repo repository.MatchLogRepo) Option {
	return func(d *Dispatcher) { d.matchLog = repo }
}

// NewDispatcher wires a Dispatcher. selfID is the bot's own author ID,
// always suppressed.
func NewDispatcher(c *classify.Classifier, s Sender, selfID string, opts ...Option) *Dispatcher {
	d := &Dispatcher{classifier: c, sender: s, selfID: selfID}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle runs one inbound message through gating, classification, and
// delivery. A message that is gated out or matches no topic is a normal
// nil return, not an error.
func (d *Dispatcher) Handle(ctx context.Context, msg domain.Message) error {
	if msg.AuthorID == d.selfID {
		return nil
	}
	if msg.FromBot && msg.AuthorID != d.probeID {
		return nil
	}
	if d.allowlist != nil && !d.allowlist.Allows(msg.ChannelID) {
		return nil
	}

	card, topic, ok := d.classifier.ClassifyTopic(msg.Content)
	d.record(ctx, msg.ChannelID, topic, ok)
	if !ok {
		return nil
	}

	sentID, err := d.sender.SendCard(ctx, msg.ChannelID, card)
	if err != nil {
		return fmt.Errorf("sending card for topic %s: %w", topic, err)
	}
	for _, emoji := range ackReactions {
		if err := d.sender.React(ctx, msg.ChannelID, sentID, emoji); err != nil {
			return fmt.Errorf("reacting to message %s: %w", sentID, err)
		}
	}
	return nil
}

// record writes a match-log row. Logging is observability only, so
// failures are swallowed; the reply has already been decided.
func (d *Dispatcher) record(ctx context.Context, channelID, topic string, matched bool) {
	if d.matchLog == nil {
		return
	}
	_ = d.matchLog.Create(ctx, &repository.MatchLog{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		Topic:     topic,
		Matched:   matched,
		CreatedAt: time.Now().UTC(),
	})
}
