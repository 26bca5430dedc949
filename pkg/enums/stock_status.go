package enums

// StockStatus classifies an item's stock level against its minimum threshold.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// StockStatusFor derives the status from a cached quantity and threshold.
// The low-stock boundary is inclusive: quantity == minQuantity is low stock.
func StockStatusFor(quantity, minQuantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity <= minQuantity:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// Label returns the operator-facing text used by report renderers.
func (s StockStatus) Label() string {
	switch s {
	case StockStatusOutOfStock:
		return "Out of Stock"
	case StockStatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}
