package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/Zeta-Slow/Industry-Tools/internal/ledger"
	"github.com/Zeta-Slow/Industry-Tools/internal/reports"
	"github.com/Zeta-Slow/Industry-Tools/pkg/config"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db"
	"github.com/Zeta-Slow/Industry-Tools/pkg/logger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/migrate"
)

func main() {
	inventoryReport := flag.Bool("inventory-report", false, "export the inventory report (PDF and Excel) and exit")
	transactionReport := flag.Bool("transaction-report", false, "export the transaction report (PDF and Excel) and exit")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "inventory"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "inventory",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open inventory database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	repo := ledger.NewRepository(dbClient)

	ledgerService, err := ledger.NewService(dbClient, repo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create ledger service", err)
		os.Exit(1)
	}
	ledgerService.OnLedgerChanged(func() {
		logg.Debug(context.Background(), "ledger changed")
	})

	reportService, err := reports.NewService(repo)
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	exporter, err := reports.NewExporter(reportService, cfg.Reports.Dir, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create report exporter", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"path": cfg.DB.Path,
	})

	if *inventoryReport {
		if _, err := exporter.InventoryPDF(ctx); err != nil {
			logg.Error(ctx, "failed to export inventory pdf", err)
			os.Exit(1)
		}
		if _, err := exporter.InventoryExcel(ctx); err != nil {
			logg.Error(ctx, "failed to export inventory workbook", err)
			os.Exit(1)
		}
	}
	if *transactionReport {
		if _, err := exporter.TransactionPDF(ctx, reports.TransactionReportQuery{}); err != nil {
			logg.Error(ctx, "failed to export transaction pdf", err)
			os.Exit(1)
		}
		if _, err := exporter.TransactionExcel(ctx, reports.TransactionReportQuery{}); err != nil {
			logg.Error(ctx, "failed to export transaction workbook", err)
			os.Exit(1)
		}
	}
	if *inventoryReport || *transactionReport {
		return
	}

	items, err := reportService.Search(ctx, "")
	if err != nil {
		logg.Error(ctx, "failed to list items", err)
		os.Exit(1)
	}
	valuation, err := reportService.InventoryValuation(ctx)
	if err != nil {
		logg.Error(ctx, "failed to compute valuation", err)
		os.Exit(1)
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"items":     len(items),
		"valuation": valuation.StringFixed(2),
	}), "inventory ready")
}
