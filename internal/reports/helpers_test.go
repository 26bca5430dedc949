package reports

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Zeta-Slow/Industry-Tools/internal/ledger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/config"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db"
	"github.com/Zeta-Slow/Industry-Tools/pkg/logger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/migrate"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "reports-test", Output: io.Discard})
}

func newTestLedger(t *testing.T) (ledger.Service, ledger.Repository) {
	t.Helper()

	cfg := config.DBConfig{
		Path:         filepath.Join(t.TempDir(), "reports_test.db"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.DB().DB()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(context.Background(), sqlDB))

	repo := ledger.NewRepository(client)
	svc, err := ledger.NewService(client, repo, newTestLogger())
	require.NoError(t, err)
	return svc, repo
}

func seedInventory(t *testing.T, svc ledger.Service) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, ledger.AddItemInput{
		Code:        "RES-1K",
		Description: "1k ohm resistor",
		Category:    "resistors",
		UnitCost:    decimal.NewFromFloat(0.10),
		Quantity:    100,
		MinQuantity: 50,
	})
	require.NoError(t, err)

	capItem, err := svc.AddItem(ctx, ledger.AddItemInput{
		Code:        "CAP-100N",
		Description: "100nF ceramic capacitor",
		Category:    "capacitors",
		UnitCost:    decimal.NewFromFloat(0.05),
		Quantity:    20,
		MinQuantity: 25,
	})
	require.NoError(t, err)

	_, err = svc.StockOut(ctx, ledger.StockMovementInput{
		ItemID:   capItem.ID,
		Quantity: 20,
	})
	require.NoError(t, err)
}
