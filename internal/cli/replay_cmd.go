package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/herald/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <questions-file>",
		Short: "Run a file of questions through the classifier",
		Long:  "Replay one question per line and report which topic each resolves to. Blank lines are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening questions file: %w", err)
			}
			defer f.Close()

			var results []formatter.ReplayResult
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				_, topic, ok := app.Classifier.ClassifyTopic(line)
				results = append(results, formatter.ReplayResult{
					Text:    line,
					Topic:   topic,
					Matched: ok,
				})
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading questions file: %w", err)
			}

			fmt.Print(formatter.FormatReplay(results))
			return nil
		},
	}
	return cmd
}
