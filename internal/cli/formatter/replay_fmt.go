package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/herald/internal/repository"
)

// ReplayResult is the outcome of replaying one question line.
type ReplayResult struct {
	Text    string
	Topic   string
	Matched bool
}

// FormatReplay renders per-line replay outcomes and a summary with a
// per-topic tally.
func FormatReplay(results []ReplayResult) string {
	var b strings.Builder
	b.WriteString(Header("Replay"))
	b.WriteString("\n")

	matched := 0
	tally := make(map[string]int)
	for _, r := range results {
		if r.Matched {
			matched++
			tally[r.Topic]++
			fmt.Fprintf(&b, "%s %s %s\n", StyleBold.Render("✓"), r.Text, Dim("→ "+r.Topic))
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", Dim("✗"), r.Text, Dim("→ no match"))
		}
	}

	fmt.Fprintf(&b, "\n%d/%d matched\n", matched, len(results))

	if len(tally) > 0 {
		topics := make([]string, 0, len(tally))
		for t := range tally {
			topics = append(topics, t)
		}
		sort.Slice(topics, func(i, j int) bool {
			if tally[topics[i]] != tally[topics[j]] {
				return tally[topics[i]] > tally[topics[j]]
			}
			return topics[i] < topics[j]
		})
		b.WriteString("\n")
		for _, t := range topics {
			fmt.Fprintf(&b, "  %3d  %s\n", tally[t], t)
		}
	}
	return b.String()
}

// FormatMatchLog renders one match-log row.
func FormatMatchLog(m *repository.MatchLog) string {
	var b strings.Builder
	b.WriteString(Header("Match " + m.ID))
	b.WriteString("\n")
	outcome := "no match"
	if m.Matched {
		outcome = m.Topic
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("topic:  "), outcome)
	fmt.Fprintf(&b, "  %s %s\n", Dim("channel:"), m.ChannelID)
	fmt.Fprintf(&b, "  %s %s\n", Dim("at:     "), m.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	return b.String()
}

// FormatTopicCounts renders the match-log per-topic tally.
func FormatTopicCounts(counts []repository.TopicCount) string {
	var b strings.Builder
	b.WriteString(Header("Matches by topic"))
	b.WriteString("\n")
	if len(counts) == 0 {
		b.WriteString(Dim("No matches recorded.") + "\n")
		return b.String()
	}
	for _, tc := range counts {
		fmt.Fprintf(&b, "  %4d  %s\n", tc.Count, tc.Topic)
	}
	return b.String()
}
