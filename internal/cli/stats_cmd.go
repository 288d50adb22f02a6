package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/herald/internal/cli/formatter"
	"github.com/alexanderramin/herald/internal/repository"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [match-id]",
		Short: "Show per-topic match counts from the match log",
		Long:  "Without arguments, prints the per-topic match tally. With a match-log row ID, prints that row.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.MatchLog == nil {
				return fmt.Errorf("match log is disabled. Enable with: HERALD_MATCH_LOG_ENABLED=true")
			}

			if len(args) == 1 {
				m, err := app.MatchLog.GetByID(context.Background(), args[0])
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no match-log row with ID %s", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatMatchLog(m))
				return nil
			}

			counts, err := app.MatchLog.CountByTopic(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTopicCounts(counts))
			return nil
		},
	}
}
