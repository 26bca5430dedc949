package reports

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Zeta-Slow/Industry-Tools/pkg/logger"
)

// Exporter writes report files into a target directory, creating it on
// demand. Filenames carry a timestamp so successive runs never clobber each
// other.
type Exporter struct {
	svc  Service
	dir  string
	logg *logger.Logger
	now  func() time.Time
}

func NewExporter(svc Service, dir string, logg *logger.Logger) (*Exporter, error) {
	if svc == nil {
		return nil, fmt.Errorf("reports service required")
	}
	if dir == "" {
		return nil, fmt.Errorf("reports directory required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Exporter{svc: svc, dir: dir, logg: logg, now: time.Now}, nil
}

func (e *Exporter) writeFile(ctx context.Context, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	path := filepath.Join(e.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	if err := render(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing report file: %w", err)
	}

	e.logg.Info(e.logg.WithField(ctx, "path", path), "report written")
	return path, nil
}

func (e *Exporter) stamp() string {
	return e.now().Format("20060102_150405")
}

// InventoryPDF writes the stock-level report and returns the file path.
func (e *Exporter) InventoryPDF(ctx context.Context) (string, error) {
	items, err := e.svc.Search(ctx, "")
	if err != nil {
		return "", err
	}
	generatedAt := e.now()
	return e.writeFile(ctx, fmt.Sprintf("inventory_report_%s.pdf", e.stamp()), func(w io.Writer) error {
		return WriteInventoryPDF(w, items, generatedAt)
	})
}

// TransactionPDF writes the movement report and returns the file path.
func (e *Exporter) TransactionPDF(ctx context.Context, query TransactionReportQuery) (string, error) {
	records, err := e.svc.TransactionReport(ctx, query)
	if err != nil {
		return "", err
	}
	generatedAt := e.now()
	return e.writeFile(ctx, fmt.Sprintf("transaction_report_%s.pdf", e.stamp()), func(w io.Writer) error {
		return WriteTransactionPDF(w, records, generatedAt)
	})
}

// InventoryExcel writes the item listing workbook and returns the file path.
func (e *Exporter) InventoryExcel(ctx context.Context) (string, error) {
	items, err := e.svc.Search(ctx, "")
	if err != nil {
		return "", err
	}
	return e.writeFile(ctx, fmt.Sprintf("inventory_report_%s.xlsx", e.stamp()), func(w io.Writer) error {
		return WriteInventoryExcel(w, items)
	})
}

// TransactionExcel writes the movement workbook and returns the file path.
func (e *Exporter) TransactionExcel(ctx context.Context, query TransactionReportQuery) (string, error) {
	records, err := e.svc.TransactionReport(ctx, query)
	if err != nil {
		return "", err
	}
	return e.writeFile(ctx, fmt.Sprintf("transaction_report_%s.xlsx", e.stamp()), func(w io.Writer) error {
		return WriteTransactionExcel(w, records)
	})
}
