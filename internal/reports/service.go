package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zeta-Slow/Industry-Tools/internal/ledger"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db/models"
	"github.com/Zeta-Slow/Industry-Tools/pkg/pagination"
)

// Service is the read-only projection surface consumed by report renderers
// and the presentation layer. It never writes to the store.
type Service interface {
	// Search matches text against item code, description and category,
	// case-insensitive. Empty text returns all items ordered by code.
	Search(ctx context.Context, text string) ([]models.Item, error)
	// InventoryValuation returns the sum of quantity x unit cost over all
	// items.
	InventoryValuation(ctx context.Context) (decimal.Decimal, error)
	LowStockReport(ctx context.Context) ([]models.Item, error)
	TransactionReport(ctx context.Context, query TransactionReportQuery) ([]ledger.TransactionRecord, error)
}

// TransactionReportQuery bounds the movement report. A zero Limit falls back
// to the pagination default.
type TransactionReportQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type service struct {
	repo ledger.Repository
}

// NewService wires the report facade over the ledger repository.
func NewService(repo ledger.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Search(ctx context.Context, text string) ([]models.Item, error) {
	return s.repo.ListItems(ctx, ledger.ItemFilter{Text: text})
}

func (s *service) InventoryValuation(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.repo.ListItems(ctx, ledger.ItemFilter{})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Valuation())
	}
	return total, nil
}

func (s *service) LowStockReport(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListLowStock(ctx, nil)
}

func (s *service) TransactionReport(ctx context.Context, query TransactionReportQuery) ([]ledger.TransactionRecord, error) {
	return s.repo.ListAllTransactions(ctx, ledger.TransactionQuery{
		Limit: pagination.NormalizeLimit(query.Limit),
		From:  query.From,
		To:    query.To,
	})
}
