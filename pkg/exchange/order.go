package exchange

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

type Kind string

const (
	Limit  Kind = "LIMIT"
	Market Kind = "MARKET"
)

// Order is one resting intent to trade. Identity is fixed at creation;
// only the remaining quantity changes, and only through ReduceQuantity.
// The book owns the canonical record while it rests; callers keep
// read-only references and never mutate orders themselves.
type Order struct {
	traderID  int64
	side      Side
	kind      Kind
	price     decimal.Decimal
	quantity  int64
	remaining int64
	createdAt time.Time
}

// NewOrder validates price and quantity and stamps the creation time.
// Creation times are the matching tie-break, so they are taken at
// submission and never rewritten.
func NewOrder(traderID int64, price decimal.Decimal, quantity int64, side Side, kind Kind) (*Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity %d must be positive", ErrInvalidOrder, quantity)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price %s must not be negative", ErrInvalidOrder, price)
	}

	return &Order{
		traderID:  traderID,
		side:      side,
		kind:      kind,
		price:     price,
		quantity:  quantity,
		remaining: quantity,
		createdAt: time.Now(),
	}, nil
}

func (o *Order) TraderID() int64        { return o.traderID }
func (o *Order) Side() Side             { return o.side }
func (o *Order) Kind() Kind             { return o.kind }
func (o *Order) Price() decimal.Decimal { return o.price }
func (o *Order) Quantity() int64        { return o.quantity }
func (o *Order) Remaining() int64       { return o.remaining }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }

// Filled reports whether the order is terminal. A filled order must not
// be visible to any subsequent matching cycle.
func (o *Order) Filled() bool { return o.remaining == 0 }

// ReduceQuantity removes filled volume from the order. Only the book's
// matching strategy calls this.
func (o *Order) ReduceQuantity(amount int64) error {
	if amount < 0 || amount > o.remaining {
		return fmt.Errorf("%w: cannot reduce remaining quantity %d by %d", ErrInvalidOrder, o.remaining, amount)
	}
	o.remaining -= amount
	return nil
}

// KindLabel returns the display name of the order kind. It has no
// effect on matching.
func (o *Order) KindLabel() string {
	if o.kind == Market {
		return "Market Order"
	}
	return "Limit Order"
}

// OrderSnapshot is a read-only copy of an order's state.
type OrderSnapshot struct {
	TraderID  int64
	Side      Side
	Kind      Kind
	Price     decimal.Decimal
	Quantity  int64
	Remaining int64
	CreatedAt time.Time
}

func (o *Order) Snapshot() OrderSnapshot {
	return OrderSnapshot{
		TraderID:  o.traderID,
		Side:      o.side,
		Kind:      o.kind,
		Price:     o.price,
		Quantity:  o.quantity,
		Remaining: o.remaining,
		CreatedAt: o.createdAt,
	}
}
