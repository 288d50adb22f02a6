package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/herald/internal/classify"
	"github.com/alexanderramin/herald/internal/cli"
	"github.com/alexanderramin/herald/internal/config"
	"github.com/alexanderramin/herald/internal/db"
	"github.com/alexanderramin/herald/internal/repository"
	"github.com/alexanderramin/herald/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// Stores are loaded once and degrade independently: a missing source
	// disables its topics but keeps the rest of the cascade working.
	reqs, err := store.LoadRequirements(cfg.RequirementsPath)
	if err != nil {
		if !errors.Is(err, store.ErrSourceUnavailable) {
			return fmt.Errorf("loading requirements: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v (requirement lookups disabled)\n", err)
		reqs = nil
	}

	promos, err := store.LoadPromos(cfg.PromosPath)
	if err != nil {
		if !errors.Is(err, store.ErrSourceUnavailable) {
			return fmt.Errorf("loading gift codes: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v (gift code list empty)\n", err)
		promos = nil
	}

	app := &cli.App{
		Classifier: classify.New(reqs, promos),
		Config:     cfg,
	}

	if cfg.MatchLogEnabled {
		database, err := db.OpenDB(cfg.MatchLogPath)
		if err != nil {
			return fmt.Errorf("opening match log database: %w", err)
		}
		defer database.Close()
		app.MatchLog = repository.NewSQLiteMatchLogRepo(database)
	}

	// Detect interactive terminal for the shell command.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
