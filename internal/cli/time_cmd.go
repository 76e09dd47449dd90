package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
)

func newTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Record worked time",
	}

	cmd.AddCommand(newTimeAddCmd(app))

	return cmd
}

func newTimeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [hours] [minutes]",
		Short: "Add a worked session for today",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, minutes, err := sessionArgs(args)
			if err != nil {
				return err
			}

			added, err := app.Ledger.AddManualSession(app.UserID, hours, minutes)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s = %s\n",
				formatter.HoursCell(added.Session.HoursEquivalent()),
				formatter.MoneyCell(added.Session.Earnings))
			fmt.Printf("Today so far: %s = %s\n",
				formatter.HoursCell(added.Day.TotalHours),
				formatter.MoneyCell(added.Day.TotalEarnings))
			return nil
		},
	}
}

// sessionArgs parses hours and minutes from args, prompting interactively
// when none were given.
func sessionArgs(args []string) (int, int, error) {
	var rawHours, rawMinutes string
	switch len(args) {
	case 2:
		rawHours, rawMinutes = args[0], args[1]
	case 1:
		rawHours, rawMinutes = args[0], "0"
	default:
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Placeholder("8").
				Value(&rawHours).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Minutes").
				Placeholder("30").
				Value(&rawMinutes).
				Validate(validateMinutes),
		))
		if err := form.Run(); err != nil {
			return 0, 0, err
		}
	}

	hours, err := strconv.Atoi(rawHours)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hours %q: %w", rawHours, err)
	}
	minutes, err := strconv.Atoi(rawMinutes)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minutes %q: %w", rawMinutes, err)
	}
	return hours, minutes, nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number >= 0")
	}
	return nil
}

func validateMinutes(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 59 {
		return fmt.Errorf("enter minutes between 0 and 59")
	}
	return nil
}
