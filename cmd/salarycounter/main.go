package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/electronduke5/SalaryCounter/internal/cli"
	"github.com/electronduke5/SalaryCounter/internal/cli/formatter"
	"github.com/electronduke5/SalaryCounter/internal/clickup"
	"github.com/electronduke5/SalaryCounter/internal/config"
	"github.com/electronduke5/SalaryCounter/internal/db"
	"github.com/electronduke5/SalaryCounter/internal/ledger"
	"github.com/electronduke5/SalaryCounter/internal/logging"
	"github.com/electronduke5/SalaryCounter/internal/reconcile"
	"github.com/electronduke5/SalaryCounter/internal/repository"
	"github.com/electronduke5/SalaryCounter/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	// Plain output when piped.
	formatter.SetColorEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	// Open the ledger file and the sync journal.
	store := ledger.Open(cfg.DataFile)

	database, err := db.OpenDB(cfg.JournalDB)
	if err != nil {
		return fmt.Errorf("opening sync journal: %w", err)
	}
	defer database.Close()

	journal := repository.NewSQLiteSyncRunRepo(database)

	// Wire the remote client and the sync engine.
	client := clickup.NewClient(clickup.Config{
		BaseURL: cfg.ClickUpBaseURL,
		Timeout: cfg.HTTPTimeout,
	})
	syncer := reconcile.NewSyncer(store, client, journal)

	app := &cli.App{
		Ledger:  service.NewLedgerService(store, nil),
		Reports: service.NewReportService(store, nil),
		Sync:    service.NewSyncService(store, syncer, client, journal),
	}

	return cli.NewRootCmd(app).Execute()
}
