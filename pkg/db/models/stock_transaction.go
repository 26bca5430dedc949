package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Zeta-Slow/Industry-Tools/pkg/enums"
)

// StockTransaction is an immutable, append-only record of a single stock
// movement. Corrections are made by recording a compensating transaction,
// never by editing or deleting rows.
type StockTransaction struct {
	ID        uuid.UUID             `gorm:"column:id;type:text;primaryKey"`
	ItemID    uuid.UUID             `gorm:"column:item_id;type:text;not null;index:idx_stock_transactions_item_id"`
	Kind      enums.TransactionKind `gorm:"column:kind;not null"`
	Quantity  int                   `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal       `gorm:"column:unit_price;type:numeric(12,2);not null"`
	Reference string                `gorm:"column:reference;not null;default:''"`
	Notes     string                `gorm:"column:notes;not null;default:''"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
}

func (StockTransaction) TableName() string { return "stock_transactions" }

// TotalPrice returns quantity x unit price at the time of the movement.
func (t *StockTransaction) TotalPrice() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
