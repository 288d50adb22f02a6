package classify

import "github.com/alexanderramin/herald/internal/domain"

// showMeMatchers are the "show.me" topics, appended after the FAQ
// cascade. All of them are gated on the literal "show.me" token, which no
// earlier predicate contains, so they never shadow a FAQ topic.
func showMeMatchers() []Matcher {
	return []Matcher{
		{
			Name: TopicShowMeVIP,
			Match: func(t string) bool {
				return has(t, "show.me") && has(t, "vip") && hasAny(t, "requirements", "req")
			},
			Render: staticCard(domain.ResponseCard{
				Title:    "💎 VIP requirements",
				Accent:   domain.AccentBlue,
				ImageURL: "https://i.imgur.com/YLhEDYv.png",
			}),
		},
		{
			Name: TopicShowMeExample,
			Match: func(t string) bool {
				return has(t, "show.me") && has(t, "example")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "📘 Example Command",
				Description: "This is an example response for 'show me example'.",
				Accent:      domain.AccentBlue,
			}),
		},
	}
}
