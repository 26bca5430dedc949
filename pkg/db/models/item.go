package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Zeta-Slow/Industry-Tools/pkg/enums"
)

// Item is a tracked inventory entry. Quantity is a cache of the transaction
// ledger and is only ever written through the ledger service.
type Item struct {
	ID           uuid.UUID          `gorm:"column:id;type:text;primaryKey"`
	Code         string             `gorm:"column:code;not null;uniqueIndex:idx_items_code"`
	Description  string             `gorm:"column:description;not null;default:''"`
	Category     string             `gorm:"column:category;not null;default:''"`
	Supplier     string             `gorm:"column:supplier;not null;default:''"`
	UnitCost     decimal.Decimal    `gorm:"column:unit_cost;type:numeric(12,2);not null"`
	SalePrice    decimal.Decimal    `gorm:"column:sale_price;type:numeric(12,2);not null"`
	Quantity     int                `gorm:"column:quantity;not null;default:0"`
	MinQuantity  int                `gorm:"column:min_quantity;not null;default:0"`
	Transactions []StockTransaction `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (Item) TableName() string { return "items" }

// StockStatus classifies the item against its minimum threshold.
func (i *Item) StockStatus() enums.StockStatus {
	return enums.StockStatusFor(i.Quantity, i.MinQuantity)
}

// Valuation returns quantity x unit cost for this item.
func (i *Item) Valuation() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
