package cli

import (
	"github.com/alexanderramin/herald/internal/classify"
	"github.com/alexanderramin/herald/internal/config"
	"github.com/alexanderramin/herald/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the wired services used by CLI commands.
type App struct {
	Classifier *classify.Classifier
	MatchLog   repository.MatchLogRepo
	Config     config.Config

	// IsInteractive reports whether stdin is a terminal; set by main.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "herald" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "herald",
		Short: "FAQ answer engine for the Kingshot community bot",
	}

	root.AddCommand(
		newAskCmd(app),
		newTopicsCmd(app),
		newReplayCmd(app),
		newDataCmd(app),
		newStatsCmd(app),
		newShellCmd(app),
	)

	return root
}
