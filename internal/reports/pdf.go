package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/Zeta-Slow/Industry-Tools/internal/ledger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db/models"
	"github.com/Zeta-Slow/Industry-Tools/pkg/enums"
)

const (
	pdfFont        = "Arial"
	pdfRowHeight   = 10.0
	pdfMaxCellRune = 35
)

func newReportPDF(title string, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, pdfRowHeight, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont(pdfFont, "I", 10)
	pdf.CellFormat(0, pdfRowHeight, "Generated on: "+generatedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	return pdf
}

func pdfHeaderRow(pdf *fpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetFont(pdfFont, "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], pdfRowHeight, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(pdfFont, "", 10)
}

func pdfCloseTable(pdf *fpdf.Fpdf, widths []float64) {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	pdf.CellFormat(total, 0, "", "T", 1, "", false, 0, "")
}

func pdfSummaryHeading(pdf *fpdf.Fpdf) {
	pdf.Ln(10)
	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, pdfRowHeight, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
}

func pdfSummaryLine(pdf *fpdf.Fpdf, line string) {
	pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}

func money(value decimal.Decimal) string {
	return "$" + value.StringFixed(2)
}

// WriteInventoryPDF renders the stock-level report: one row per item with its
// threshold status, followed by stock counters and the total valuation.
func WriteInventoryPDF(w io.Writer, items []models.Item, generatedAt time.Time) error {
	pdf := newReportPDF("Inventory Report", generatedAt)

	widths := []float64{30, 55, 25, 18, 18, 22, 22}
	pdfHeaderRow(pdf, widths, []string{"Code", "Description", "Category", "Qty", "Min", "Unit Cost", "Status"})

	outOfStock := 0
	lowStock := 0
	valuation := decimal.Zero
	for i := range items {
		item := &items[i]
		status := item.StockStatus()
		switch status {
		case enums.StockStatusOutOfStock:
			outOfStock++
		case enums.StockStatusLowStock:
			lowStock++
		}

		pdf.CellFormat(widths[0], pdfRowHeight, truncate(item.Code, 18), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], pdfRowHeight, truncate(item.Description, 30), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], pdfRowHeight, truncate(item.Category, 15), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], pdfRowHeight, fmt.Sprintf("%d", item.Quantity), "LR", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], pdfRowHeight, fmt.Sprintf("%d", item.MinQuantity), "LR", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], pdfRowHeight, money(item.UnitCost), "LR", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], pdfRowHeight, status.Label(), "LR", 0, "C", false, 0, "")
		pdf.Ln(-1)

		valuation = valuation.Add(item.Valuation())
	}
	pdfCloseTable(pdf, widths)

	pdfSummaryHeading(pdf)
	pdfSummaryLine(pdf, fmt.Sprintf("Total Items: %d", len(items)))
	pdfSummaryLine(pdf, fmt.Sprintf("Out of Stock: %d", outOfStock))
	pdfSummaryLine(pdf, fmt.Sprintf("Low Stock: %d", lowStock))
	pdfSummaryLine(pdf, "Inventory Valuation: "+money(valuation))

	return pdf.Output(w)
}

// WriteTransactionPDF renders the movement report with totals for stock in,
// stock out and the net amount.
func WriteTransactionPDF(w io.Writer, records []ledger.TransactionRecord, generatedAt time.Time) error {
	pdf := newReportPDF("Transaction Report", generatedAt)

	widths := []float64{25, 15, 65, 18, 25, 25}
	pdfHeaderRow(pdf, widths, []string{"Date", "Type", "Item", "Qty", "Unit Price", "Total"})

	totalIn := decimal.Zero
	totalOut := decimal.Zero
	for i := range records {
		record := &records[i]
		amount := record.TotalPrice()
		if record.Kind.Sign() > 0 {
			totalIn = totalIn.Add(amount)
		} else {
			totalOut = totalOut.Add(amount)
		}

		pdf.CellFormat(widths[0], pdfRowHeight, record.CreatedAt.Format("2006-01-02"), "LR", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], pdfRowHeight, string(record.Kind), "LR", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], pdfRowHeight, truncate(record.ItemCode+" "+record.ItemDescription, pdfMaxCellRune), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], pdfRowHeight, fmt.Sprintf("%d", record.Quantity), "LR", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], pdfRowHeight, money(record.UnitPrice), "LR", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], pdfRowHeight, money(amount), "LR", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdfCloseTable(pdf, widths)

	pdfSummaryHeading(pdf)
	pdfSummaryLine(pdf, fmt.Sprintf("Total Transactions: %d", len(records)))
	pdfSummaryLine(pdf, "Total Stock In: "+money(totalIn))
	pdfSummaryLine(pdf, "Total Stock Out: "+money(totalOut))
	pdfSummaryLine(pdf, "Net: "+money(totalIn.Sub(totalOut)))

	return pdf.Output(w)
}
