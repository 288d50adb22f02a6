package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herald/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatCard renders a response card as a bordered terminal block. The
// border takes the card's accent color, mirroring how a chat platform
// shows the embed edge.
func FormatCard(card *domain.ResponseCard) string {
	accent := AccentStyle(card.Accent)

	var b strings.Builder
	b.WriteString(accent.Render(card.Title))
	if card.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(StyleFg.Render(card.Description))
	}
	if card.ImageURL != "" {
		b.WriteString("\n\n")
		b.WriteString(Dim("Image: " + card.ImageURL))
	}

	hex := fmt.Sprintf("#%06x", int(card.Accent))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hex)).
		PaddingLeft(2).
		PaddingRight(2)

	return box.Render(b.String()) + "\n"
}

// FormatNoMatch renders the no-match outcome with optional topic
// suggestions from fuzzy matching.
func FormatNoMatch(suggestions []string) string {
	var b strings.Builder
	b.WriteString(Dim("No topic matched."))
	if len(suggestions) > 0 {
		b.WriteString("\n\nClosest topics:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "  • %s\n", s)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// FormatTopicList renders the cascade's topic names in priority order.
func FormatTopicList(names []string) string {
	var b strings.Builder
	b.WriteString(Header("Topics (priority order)"))
	b.WriteString("\n")
	for i, name := range names {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, name)
	}
	return b.String()
}
