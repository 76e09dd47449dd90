package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
)

func newRateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Manage the hourly rate",
	}

	cmd.AddCommand(
		newRateSetCmd(app),
		newRateShowCmd(app),
	)

	return cmd
}

func newRateSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [amount]",
		Short: "Set the hourly rate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Hourly rate").
						Placeholder("250").
						Value(&raw).
						Validate(validatePositiveNumber),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			rate, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", raw, err)
			}
			if err := app.Ledger.SetRate(app.UserID, rate); err != nil {
				return err
			}

			fmt.Printf("Rate set: %s per hour\n", formatter.MoneyCell(rate))
			return nil
		},
	}
}

func newRateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current hourly rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rate := app.Ledger.Rate(app.UserID)
			if rate <= 0 {
				fmt.Println(formatter.Warn("No rate configured. Run: salarycounter rate set"))
				return nil
			}
			fmt.Printf("Current rate: %s per hour\n", formatter.MoneyCell(rate))
			return nil
		},
	}
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
