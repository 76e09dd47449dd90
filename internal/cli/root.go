package cli

import (
	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/service"
)

// App holds references to the service interfaces used by CLI commands,
// plus the user identity every command operates on.
type App struct {
	Ledger  service.LedgerService
	Reports service.ReportService
	Sync    service.SyncService

	// UserID is bound to the global --user flag.
	UserID string
}

// NewRootCmd creates the top-level "salarycounter" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "salarycounter",
		Short: "Track worked time and earnings, synced with ClickUp",
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", "default", "Ledger user identifier")

	root.AddCommand(
		newRateCmd(app),
		newTimeCmd(app),
		newReportCmd(app),
		newRemoteCmd(app),
		newSyncCmd(app),
		newHistoryCmd(app),
	)

	return root
}
