package cli

import (
	"fmt"

	"github.com/alexanderramin/herald/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List recognized topics in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatTopicList(app.Classifier.TopicNames()))
			return nil
		},
	}
}
