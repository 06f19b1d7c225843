package exchange

import "github.com/shopspring/decimal"

// OrderFactory constructs orders of one fixed kind, so order-placing
// code stays agnostic to which kind it was handed. Validation is
// delegated entirely to NewOrder.
type OrderFactory interface {
	Create(traderID int64, price decimal.Decimal, quantity int64, side Side) (*Order, error)
}

type MarketOrderFactory struct{}

func (MarketOrderFactory) Create(traderID int64, price decimal.Decimal, quantity int64, side Side) (*Order, error) {
	return NewOrder(traderID, price, quantity, side, Market)
}

type LimitOrderFactory struct{}

func (LimitOrderFactory) Create(traderID int64, price decimal.Decimal, quantity int64, side Side) (*Order, error) {
	return NewOrder(traderID, price, quantity, side, Limit)
}
