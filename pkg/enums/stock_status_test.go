package enums

import "testing"

func TestStockStatusBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		minQuantity int
		want        StockStatus
	}{
		{name: "zero is out of stock", quantity: 0, minQuantity: 10, want: StockStatusOutOfStock},
		{name: "negative is out of stock", quantity: -3, minQuantity: 10, want: StockStatusOutOfStock},
		{name: "at threshold is low stock", quantity: 10, minQuantity: 10, want: StockStatusLowStock},
		{name: "below threshold is low stock", quantity: 1, minQuantity: 10, want: StockStatusLowStock},
		{name: "above threshold is in stock", quantity: 11, minQuantity: 10, want: StockStatusInStock},
		{name: "zero threshold still flags empty", quantity: 0, minQuantity: 0, want: StockStatusOutOfStock},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StockStatusFor(tc.quantity, tc.minQuantity); got != tc.want {
				t.Fatalf("StockStatusFor(%d, %d) = %s, want %s", tc.quantity, tc.minQuantity, got, tc.want)
			}
		})
	}
}

func TestTransactionKind(t *testing.T) {
	if !TransactionKindIn.IsValid() || !TransactionKindOut.IsValid() {
		t.Fatalf("canonical kinds must be valid")
	}
	if TransactionKind("SIDEWAYS").IsValid() {
		t.Fatalf("unknown kind must be invalid")
	}
	if TransactionKindIn.Sign() != 1 || TransactionKindOut.Sign() != -1 {
		t.Fatalf("unexpected kind signs")
	}
	if _, err := ParseTransactionKind("IN"); err != nil {
		t.Fatalf("expected IN to parse: %v", err)
	}
	if _, err := ParseTransactionKind("in"); err == nil {
		t.Fatalf("kinds are case-sensitive on the wire")
	}
}
