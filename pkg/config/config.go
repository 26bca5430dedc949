package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "INVENTORY"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Reports      ReportsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVENTORY_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"INVENTORY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INVENTORY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path is the sqlite database file. The surrounding directory must exist;
	// the file itself is created on first open.
	Path        string        `envconfig:"INVENTORY_DB_PATH" default:"data/inventory.db"`
	BusyTimeout time.Duration `envconfig:"INVENTORY_DB_BUSY_TIMEOUT" default:"5s"`

	// A single writer keeps compound ledger mutations serialized; sqlite
	// rejects concurrent writers anyway.
	MaxOpenConns    int           `envconfig:"INVENTORY_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"INVENTORY_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"INVENTORY_DB_CONN_MAX_LIFETIME" default:"0"`
	ConnMaxIdleTime time.Duration `envconfig:"INVENTORY_DB_CONN_MAX_IDLE_TIME" default:"0"`
}

func (db DBConfig) validate() error {
	if strings.TrimSpace(db.Path) == "" {
		return fmt.Errorf("%s_DB_PATH is required", EnvPrefix)
	}
	return nil
}

// DSN builds the sqlite connection string with the pragmas the ledger relies
// on (foreign keys for cascade deletes, busy timeout for the shared file).
func (db DBConfig) DSN() string {
	timeoutMS := int(db.BusyTimeout / time.Millisecond)
	if timeoutMS <= 0 {
		timeoutMS = 5000
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", filepath.ToSlash(db.Path), timeoutMS)
}

type ReportsConfig struct {
	Dir string `envconfig:"INVENTORY_REPORTS_DIR" default:"reports"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"INVENTORY_AUTO_MIGRATE" default:"true"`
}
