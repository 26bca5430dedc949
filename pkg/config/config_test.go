package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if cfg.DB.Path != "data/inventory.db" {
		t.Fatalf("unexpected default db path %q", cfg.DB.Path)
	}
	if cfg.DB.MaxOpenConns != 1 {
		t.Fatalf("expected single writer connection, got %d", cfg.DB.MaxOpenConns)
	}
	if cfg.Reports.Dir != "reports" {
		t.Fatalf("unexpected default reports dir %q", cfg.Reports.Dir)
	}
	if !cfg.FeatureFlags.AutoMigrate {
		t.Fatalf("expected auto-migrate to default on")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INVENTORY_APP_ENV", "prod")
	t.Setenv("INVENTORY_DB_PATH", "/var/lib/inventory/stock.db")
	t.Setenv("INVENTORY_DB_BUSY_TIMEOUT", "2s")
	t.Setenv("INVENTORY_REPORTS_DIR", "/tmp/reports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.DB.BusyTimeout != 2*time.Second {
		t.Fatalf("unexpected busy timeout %v", cfg.DB.BusyTimeout)
	}
	if cfg.Reports.Dir != "/tmp/reports" {
		t.Fatalf("unexpected reports dir %q", cfg.Reports.Dir)
	}
}

func TestLoad_BlankPathRejected(t *testing.T) {
	t.Setenv("INVENTORY_DB_PATH", "   ")
	if _, err := Load(); err == nil {
		t.Fatal("expected blank db path to return an error")
	}
}

func TestDSNCarriesPragmas(t *testing.T) {
	db := DBConfig{Path: "data/inventory.db", BusyTimeout: 2 * time.Second}
	dsn := db.DSN()

	if !strings.HasPrefix(dsn, "file:data/inventory.db?") {
		t.Fatalf("unexpected dsn prefix: %s", dsn)
	}
	if !strings.Contains(dsn, "_foreign_keys=on") {
		t.Fatalf("dsn must enable foreign keys: %s", dsn)
	}
	if !strings.Contains(dsn, "_busy_timeout=2000") {
		t.Fatalf("dsn must carry busy timeout: %s", dsn)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	app := AppConfig{Env: "DEV"}
	if !app.IsDev() || app.IsProd() {
		t.Fatalf("expected case-insensitive dev match")
	}
	app.Env = "prod"
	if !app.IsProd() || app.IsDev() {
		t.Fatalf("expected prod match")
	}
}
