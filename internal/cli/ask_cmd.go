package cli

import (
	"fmt"

	"github.com/alexanderramin/herald/internal/cli/formatter"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `ask "<message text>"`,
		Short: "Classify one message and print its answer card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, ok := app.Classifier.Classify(args[0])
			if !ok {
				fmt.Print(formatter.FormatNoMatch(suggestTopics(app, args[0])))
				return nil
			}
			fmt.Print(formatter.FormatCard(card))
			return nil
		},
	}
	return cmd
}

// suggestTopics fuzzy-matches the unmatched text against topic names so
// operators can see which rule a question nearly reached. This is a CLI
// affordance only; the bot path stays silent on no match.
func suggestTopics(app *App, text string) []string {
	names := app.Classifier.TopicNames()
	matches := fuzzy.Find(text, names)

	limit := 3
	if len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, 0, limit)
	for _, m := range matches[:limit] {
		out = append(out, m.Str)
	}
	return out
}
