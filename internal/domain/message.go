package domain

// Message is an inbound chat message as seen by the gateway. Content is
// already decoded plain text; the platform client owns everything else.
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	FromBot   bool
	Content   string
}
