package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
	"github.com/electronduke5/SalaryCounter/internal/domain"
)

func newRemoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the ClickUp connection",
	}

	cmd.AddCommand(
		newRemoteConfigureCmd(app),
		newRemoteTasksCmd(app),
	)

	return cmd
}

func newRemoteConfigureCmd(app *App) *cobra.Command {
	var token, workspace string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the ClickUp API token and workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" || workspace == "" {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("ClickUp API token").
						Value(&token).
						EchoMode(huh.EchoModePassword),
					huh.NewInput().
						Title("Workspace (name or ID)").
						Value(&workspace),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			creds := domain.RemoteCredentials{APIToken: token, Workspace: workspace}
			if !creds.Configured() {
				return fmt.Errorf("both token and workspace are required")
			}
			if err := app.Ledger.SetRemoteCredentials(app.UserID, creds); err != nil {
				return err
			}

			fmt.Println("ClickUp connection saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "ClickUp API token")
	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace name or ID")
	return cmd
}

func newRemoteTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List open tasks in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Sync.AssignedTasks(context.Background(), app.UserID)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No tasks found"))
				return nil
			}
			for _, t := range tasks {
				fmt.Printf("%-12s %-40s %s\n", t.ID, t.Name, formatter.Dim(t.Status))
			}
			return nil
		},
	}
}
