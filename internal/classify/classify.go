// Package classify maps free-text chat messages onto FAQ topics and
// renders their answer cards. The matcher cascade is an ordered list
// evaluated first-match-wins; rule order is observable behavior and must
// not be rearranged without sign-off. Predicates are intentionally broad
// single-keyword containment tests and may fire on unrelated phrasing
// that happens to contain the same substrings.
package classify

import (
	"github.com/alexanderramin/herald/internal/domain"
	"github.com/alexanderramin/herald/internal/store"
)

// Matcher is one topic: a predicate over folded message text and a
// renderer producing its answer card. Render receives the folded text so
// parametric topics can extract arguments from it.
type Matcher struct {
	Name   string
	Match  func(text string) bool
	Render func(text string) *domain.ResponseCard
}

// Classifier evaluates the topic cascade against incoming messages. It
// only reads the injected stores, so a single instance is safe for
// concurrent use across messages.
type Classifier struct {
	reqs     *store.Requirements
	promos   *store.Promos
	matchers []Matcher
}

// New builds a Classifier over the given stores. Either store may be nil:
// without requirements the requirement-lookup topic is disabled, and
// without promos the gift-code topic reports no active codes. The
// remaining topics keep working either way.
func New(reqs *store.Requirements, promos *store.Promos) *Classifier {
	c := &Classifier{reqs: reqs, promos: promos}
	c.matchers = c.cascade()
	return c
}

// Classify folds the text once, walks the cascade in priority order, and
// returns the first matching topic's card. The false return means no
// topic matched, which is a normal outcome: the caller takes no action.
func (c *Classifier) Classify(text string) (*domain.ResponseCard, bool) {
	folded := fold(text)
	for _, m := range c.matchers {
		if m.Match(folded) {
			return m.Render(folded), true
		}
	}
	return nil, false
}

// ClassifyTopic is Classify plus the name of the topic that fired, for
// replay tooling and match logging.
func (c *Classifier) ClassifyTopic(text string) (*domain.ResponseCard, string, bool) {
	folded := fold(text)
	for _, m := range c.matchers {
		if m.Match(folded) {
			return m.Render(folded), m.Name, true
		}
	}
	return nil, "", false
}

// TopicNames returns the cascade's topic names in priority order.
func (c *Classifier) TopicNames() []string {
	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name
	}
	return names
}

// staticCard adapts a fixed card into a Matcher renderer.
func staticCard(card domain.ResponseCard) func(string) *domain.ResponseCard {
	return func(string) *domain.ResponseCard {
		out := card
		return &out
	}
}
