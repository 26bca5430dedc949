package reports

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeta-Slow/Industry-Tools/pkg/enums"
)

func TestService_Search(t *testing.T) {
	ledgerSvc, repo := newTestLedger(t)
	seedInventory(t, ledgerSvc)

	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CAP-100N", all[0].Code)
	assert.Equal(t, "RES-1K", all[1].Code)

	byDescription, err := svc.Search(ctx, "resistor")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "RES-1K", byDescription[0].Code)

	byCategory, err := svc.Search(ctx, "capacitors")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "CAP-100N", byCategory[0].Code)

	none, err := svc.Search(ctx, "transistor")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_InventoryValuation(t *testing.T) {
	ledgerSvc, repo := newTestLedger(t)
	seedInventory(t, ledgerSvc)

	svc, err := NewService(repo)
	require.NoError(t, err)

	// 100 x 0.10 for the resistor; the capacitor stock was fully drawn down.
	valuation, err := svc.InventoryValuation(context.Background())
	require.NoError(t, err)
	assert.True(t, valuation.Equal(decimal.NewFromFloat(10.00)), "got %s", valuation)
}

func TestService_LowStockReport(t *testing.T) {
	ledgerSvc, repo := newTestLedger(t)
	seedInventory(t, ledgerSvc)

	svc, err := NewService(repo)
	require.NoError(t, err)

	items, err := svc.LowStockReport(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CAP-100N", items[0].Code)
	assert.Equal(t, enums.StockStatusOutOfStock, items[0].StockStatus())
}

func TestService_TransactionReport(t *testing.T) {
	ledgerSvc, repo := newTestLedger(t)
	seedInventory(t, ledgerSvc)

	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	records, err := svc.TransactionReport(ctx, TransactionReportQuery{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, enums.TransactionKindOut, records[0].Kind)
	assert.Equal(t, "CAP-100N", records[0].ItemCode)

	limited, err := svc.TransactionReport(ctx, TransactionReportQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
