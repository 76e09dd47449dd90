package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
	"github.com/electronduke5/SalaryCounter/internal/domain"
)

func newSyncCmd(app *App) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull ClickUp time entries into the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			start := now.AddDate(0, 0, -7)
			end := now

			var err error
			if fromFlag != "" {
				if start, err = time.ParseInLocation(domain.DateLayout, fromFlag, time.Local); err != nil {
					return fmt.Errorf("invalid --from date: %w", err)
				}
			}
			if toFlag != "" {
				parsed, err := time.ParseInLocation(domain.DateLayout, toFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --to date: %w", err)
				}
				// Include the whole end day.
				end = parsed.AddDate(0, 0, 1).Add(-time.Millisecond)
			}

			result, err := app.Sync.Sync(context.Background(), app.UserID, start, end)
			if err != nil {
				return err
			}

			if result.SyncedCount == 0 {
				fmt.Println(formatter.Dim("Nothing new to sync"))
				return nil
			}
			fmt.Printf("Synced %d entries: %s = %s\n",
				result.SyncedCount,
				formatter.HoursCell(result.TotalHours),
				formatter.MoneyCell(result.TotalEarnings))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Window start date (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Window end date (YYYY-MM-DD, default today)")
	return cmd
}
