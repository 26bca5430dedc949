package reports

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeta-Slow/Industry-Tools/pkg/db/models"
)

func TestWriters_ProduceNonEmptyOutput(t *testing.T) {
	ledgerSvc, repo := newTestLedger(t)
	seedInventory(t, ledgerSvc)

	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	items, err := svc.Search(ctx, "")
	require.NoError(t, err)
	records, err := svc.TransactionReport(ctx, TransactionReportQuery{})
	require.NoError(t, err)

	now := time.Now()

	var inventoryPDF bytes.Buffer
	require.NoError(t, WriteInventoryPDF(&inventoryPDF, items, now))
	assert.Greater(t, inventoryPDF.Len(), 0)
	assert.True(t, bytes.HasPrefix(inventoryPDF.Bytes(), []byte("%PDF")))

	var transactionPDF bytes.Buffer
	require.NoError(t, WriteTransactionPDF(&transactionPDF, records, now))
	assert.True(t, bytes.HasPrefix(transactionPDF.Bytes(), []byte("%PDF")))

	var inventoryXLSX bytes.Buffer
	require.NoError(t, WriteInventoryExcel(&inventoryXLSX, items))
	assert.Greater(t, inventoryXLSX.Len(), 0)

	var transactionXLSX bytes.Buffer
	require.NoError(t, WriteTransactionExcel(&transactionXLSX, records))
	assert.Greater(t, transactionXLSX.Len(), 0)
}

func TestWriteInventoryExcel_SingleItem(t *testing.T) {
	items := []models.Item{{Code: "RES-1K"}}

	var buf bytes.Buffer
	require.NoError(t, WriteInventoryExcel(&buf, items))
	assert.Greater(t, buf.Len(), 0)
}

func TestExporter_WritesFiles(t *testing.T) {
	ledgerSvc, repo := newTestLedger(t)
	seedInventory(t, ledgerSvc)

	svc, err := NewService(repo)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "reports")
	exporter, err := NewExporter(svc, dir, newTestLogger())
	require.NoError(t, err)
	ctx := context.Background()

	paths := make([]string, 0, 4)

	path, err := exporter.InventoryPDF(ctx)
	require.NoError(t, err)
	paths = append(paths, path)

	path, err = exporter.TransactionPDF(ctx, TransactionReportQuery{})
	require.NoError(t, err)
	paths = append(paths, path)

	path, err = exporter.InventoryExcel(ctx)
	require.NoError(t, err)
	paths = append(paths, path)

	path, err = exporter.TransactionExcel(ctx, TransactionReportQuery{})
	require.NoError(t, err)
	paths = append(paths, path)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}
