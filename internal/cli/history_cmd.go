package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Sync.History(context.Background(), app.UserID, limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println(formatter.Dim("No sync runs recorded"))
				return nil
			}
			for _, run := range runs {
				status := fmt.Sprintf("%d entries, %s = %s",
					run.SyncedCount,
					formatter.Hours(run.TotalHours),
					formatter.Money(run.TotalEarnings))
				if run.Error != "" {
					status = formatter.Warn("failed: " + run.Error)
				}
				fmt.Printf("%s  [%s - %s]  %s\n",
					run.StartedAt.Format("2006-01-02 15:04"),
					run.WindowStart.Format("02.01"),
					run.WindowEnd.Format("02.01"),
					status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")
	return cmd
}
