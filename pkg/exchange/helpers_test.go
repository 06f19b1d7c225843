package exchange

import (
	"testing"

	"github.com/shopspring/decimal"
)

// mustOrder builds a limit order for test setup, failing the test on
// invalid inputs.
func mustOrder(t *testing.T, traderID int64, price int64, qty int64, side Side) *Order {
	t.Helper()
	o, err := NewOrder(traderID, decimal.NewFromInt(price), qty, side, Limit)
	if err != nil {
		t.Fatalf("order(%d, %d, %d, %s): %v", traderID, price, qty, side, err)
	}
	return o
}
