package enums

import "fmt"

// TransactionKind is the direction of a stock movement.
type TransactionKind string

const (
	TransactionKindIn  TransactionKind = "IN"
	TransactionKindOut TransactionKind = "OUT"
)

var validTransactionKinds = []TransactionKind{
	TransactionKindIn,
	TransactionKindOut,
}

// IsValid reports whether the value matches a known movement direction.
func (k TransactionKind) IsValid() bool {
	for _, candidate := range validTransactionKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// Sign returns the multiplier applied to an item's cached quantity when a
// transaction of this kind is recorded.
func (k TransactionKind) Sign() int {
	if k == TransactionKindOut {
		return -1
	}
	return 1
}

// ParseTransactionKind converts raw input into TransactionKind.
func ParseTransactionKind(value string) (TransactionKind, error) {
	for _, candidate := range validTransactionKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction kind %q", value)
}
