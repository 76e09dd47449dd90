package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/electronduke5/SalaryCounter/internal/aggregate"
	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show earnings reports",
	}

	cmd.AddCommand(
		newSummaryReportCmd(app, "today", "Earnings for today", func() aggregate.Summary {
			return app.Reports.Today(app.UserID)
		}),
		newSummaryReportCmd(app, "yesterday", "Earnings for yesterday", func() aggregate.Summary {
			return app.Reports.Yesterday(app.UserID)
		}),
		newSummaryReportCmd(app, "week", "Earnings since Monday", func() aggregate.Summary {
			return app.Reports.WeekToDate(app.UserID)
		}),
		newSummaryReportCmd(app, "month", "Earnings over the last 30 days", func() aggregate.Summary {
			return app.Reports.TrailingMonth(app.UserID)
		}),
		newWeekDetailsCmd(app),
		newMonthWeeksCmd(app),
		newYearCmd(app),
		newTasksReportCmd(app),
	)

	return cmd
}

func newSummaryReportCmd(app *App, use, short string, query func() aggregate.Summary) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSummary(short, query())
			return nil
		},
	}
}

func printSummary(title string, sum aggregate.Summary) {
	fmt.Println(formatter.Header(title))
	if sum.DaysWorked == 0 {
		fmt.Println(formatter.Dim("No work recorded in this window"))
		return
	}
	fmt.Printf("Days worked:  %d\n", sum.DaysWorked)
	fmt.Printf("Hours:        %s\n", formatter.HoursCell(sum.TotalHours))
	fmt.Printf("Earned:       %s\n", formatter.MoneyCell(sum.TotalEarnings))
	fmt.Printf("Avg per day:  %s\n", formatter.MoneyCell(sum.AveragePerDay()))
}

func newWeekDetailsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weekdetails",
		Short: "Per-day earnings since Monday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := app.Reports.WeekDays(app.UserID)
			fmt.Println(formatter.Header("This week by day"))

			var total aggregate.Summary
			for _, d := range days {
				line := fmt.Sprintf("%-9s %s  %s = %s",
					d.Date.Weekday().String(),
					d.Date.Format("02.01"),
					formatter.Hours(d.Summary.TotalHours),
					formatter.Money(d.Summary.TotalEarnings))
				if d.Summary.TotalHours == 0 {
					fmt.Println(formatter.Dim(line))
				} else {
					fmt.Println(line)
				}
				total.TotalHours += d.Summary.TotalHours
				total.TotalEarnings += d.Summary.TotalEarnings
				total.DaysWorked += d.Summary.DaysWorked
			}

			if total.TotalHours > 0 {
				fmt.Printf("\nTotal: %s = %s\n",
					formatter.HoursCell(total.TotalHours),
					formatter.MoneyCell(total.TotalEarnings))
			}
			return nil
		},
	}
}

func newMonthWeeksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "monthweeks",
		Short: "Earnings by week of the current month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, total := app.Reports.MonthWeeks(app.UserID)
			fmt.Println(formatter.Header(time.Now().Format("January 2006") + " by week"))

			if len(weeks) == 0 {
				fmt.Println(formatter.Dim("No work recorded this month"))
				return nil
			}
			for _, w := range weeks {
				fmt.Printf("Week %d (%s - %s): %s = %s\n",
					w.Number,
					w.Start.Format("02.01"),
					w.End.Format("02.01"),
					formatter.HoursCell(w.Summary.TotalHours),
					formatter.MoneyCell(w.Summary.TotalEarnings))
			}
			fmt.Printf("\nWeeks with work: %d\n", len(weeks))
			fmt.Printf("Total: %s = %s\n",
				formatter.HoursCell(total.TotalHours),
				formatter.MoneyCell(total.TotalEarnings))
			return nil
		},
	}
}

func newYearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "year",
		Short: "Earnings by month of the current year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			months, total := app.Reports.YearMonths(app.UserID)
			fmt.Println(formatter.Header(fmt.Sprintf("%d by month", time.Now().Year())))

			if len(months) == 0 {
				fmt.Println(formatter.Dim("No work recorded this year"))
				return nil
			}
			for _, m := range months {
				fmt.Printf("%-10s %s = %s\n",
					m.Month.String(),
					formatter.HoursCell(m.Summary.TotalHours),
					formatter.MoneyCell(m.Summary.TotalEarnings))
			}
			fmt.Printf("\nTotal: %s = %s\n",
				formatter.HoursCell(total.TotalHours),
				formatter.MoneyCell(total.TotalEarnings))
			return nil
		},
	}
}

func newTasksReportCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Earnings grouped by task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			groups := app.Reports.TasksInRange(app.UserID, now.AddDate(0, 0, -(days-1)), now)

			fmt.Println(formatter.Header(fmt.Sprintf("Last %d days by task", days)))
			if len(groups) == 0 {
				fmt.Println(formatter.Dim("No sessions in this window"))
				return nil
			}
			for _, g := range groups {
				fmt.Printf("%-24s %s = %s (%d sessions, %s - %s)\n",
					g.Label,
					formatter.HoursCell(g.TotalHours),
					formatter.MoneyCell(g.TotalEarnings),
					g.SessionCount,
					g.FirstLogged.Format("02.01"),
					g.LastLogged.Format("02.01"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Window size in days")
	return cmd
}
