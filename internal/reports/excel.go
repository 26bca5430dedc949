package reports

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"

	"github.com/Zeta-Slow/Industry-Tools/internal/ledger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db/models"
)

func addHeaderRow(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, header := range headers {
		cell := row.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
}

func addStringRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().Value = value
	}
}

// setColumnWidths applies a uniform width to the first count columns.
// Column indices are 1-based in xlsx/v3.
func setColumnWidths(sheet *xlsx.Sheet, count int) {
	for i := 1; i <= count; i++ {
		sheet.SetColWidth(i, i, 15)
	}
}

// WriteInventoryExcel renders the item listing as an .xlsx workbook with one
// "Inventory" sheet.
func WriteInventoryExcel(w io.Writer, items []models.Item) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return fmt.Errorf("adding worksheet: %w", err)
	}

	headers := []string{"Code", "Description", "Category", "Supplier", "Quantity", "Min Quantity", "Unit Cost", "Sale Price", "Valuation", "Status"}
	addHeaderRow(sheet, headers)

	for i := range items {
		item := &items[i]
		addStringRow(sheet, []string{
			item.Code,
			item.Description,
			item.Category,
			item.Supplier,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.MinQuantity),
			item.UnitCost.StringFixed(2),
			item.SalePrice.StringFixed(2),
			item.Valuation().StringFixed(2),
			item.StockStatus().Label(),
		})
	}

	setColumnWidths(sheet, len(headers))

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteTransactionExcel renders the movement listing as an .xlsx workbook
// with one "Transactions" sheet.
func WriteTransactionExcel(w io.Writer, records []ledger.TransactionRecord) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return fmt.Errorf("adding worksheet: %w", err)
	}

	headers := []string{"Date", "Type", "Item Code", "Item Description", "Quantity", "Unit Price", "Total", "Reference", "Notes"}
	addHeaderRow(sheet, headers)

	for i := range records {
		record := &records[i]
		addStringRow(sheet, []string{
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			string(record.Kind),
			record.ItemCode,
			record.ItemDescription,
			fmt.Sprintf("%d", record.Quantity),
			record.UnitPrice.StringFixed(2),
			record.TotalPrice().StringFixed(2),
			record.Reference,
			record.Notes,
		})
	}

	setColumnWidths(sheet, len(headers))

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
