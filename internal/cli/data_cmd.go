package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/herald/internal/store"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect and maintain the bot's data sources",
	}
	cmd.AddCommand(
		newDataValidateCmd(app),
		newDataCodesCmd(app),
	)
	return cmd
}

func newDataValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse all data sources and report kept/dropped rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config

			reqs, err := store.LoadRequirements(cfg.RequirementsPath)
			if err != nil {
				fmt.Printf("requirements: %v\n", err)
			} else {
				fmt.Printf("requirements: %d records, %d rows dropped (%s)\n",
					reqs.Len(), reqs.Dropped(), cfg.RequirementsPath)
			}

			promos, err := store.LoadPromos(cfg.PromosPath)
			if err != nil {
				fmt.Printf("gift codes:   %v\n", err)
			} else {
				fmt.Printf("gift codes:   %d codes, %d lines dropped (%s)\n",
					len(promos.Active()), promos.Dropped(), cfg.PromosPath)
			}

			allow, err := store.LoadAllowlist(cfg.AllowlistPath)
			if err != nil {
				fmt.Printf("channels:     %v\n", err)
			} else {
				fmt.Printf("channels:     %d allowed (%s)\n", allow.Len(), cfg.AllowlistPath)
			}
			return nil
		},
	}
}

func newDataCodesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Manage the gift code list",
	}
	cmd.AddCommand(newDataCodesAddCmd(app))
	return cmd
}

func newDataCodesAddCmd(app *App) *cobra.Command {
	var code, expiry string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a gift code to the promo source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" || expiry == "" {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Gift code").
							Placeholder("ABC123").
							Value(&code).
							Validate(validateCode),
						huh.NewInput().
							Title("Expiry (YYYY-MM-DD)").
							Placeholder("2025-12-31").
							Value(&expiry).
							Validate(validateDate),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if err := validateCode(code); err != nil {
				return err
			}
			if err := validateDate(expiry); err != nil {
				return err
			}

			f, err := os.OpenFile(app.Config.PromosPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("opening promo source: %w", err)
			}
			defer f.Close()
			if _, err := fmt.Fprintf(f, "%s %s\n", code, expiry); err != nil {
				return fmt.Errorf("appending gift code: %w", err)
			}

			fmt.Printf("Added %s (expires %s)\n", code, expiry)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Gift code")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	return cmd
}

func validateCode(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("code is required")
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Errorf("code must not contain whitespace")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expiry must be YYYY-MM-DD")
	}
	return nil
}
