// Package trader implements the trading agents of the simulation: each
// trader holds a stock portfolio and submits orders to a shared book
// whenever prices cross its thresholds.
package trader

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/joripage/exchange-sim/pkg/exchange"
	"github.com/joripage/exchange-sim/pkg/stock"
)

// Trader places orders through an order factory into the book. It keeps
// read-only references to the orders it submitted; the book owns and
// mutates the canonical records. A Trader is driven by one goroutine at
// a time.
type Trader struct {
	id      int64
	name    string
	stocks  []stock.Stock
	factory exchange.OrderFactory
	book    *exchange.OrderBook
	orders  []*exchange.Order

	log *zap.SugaredLogger
}

// New assigns the trader's id from ids, so callers (and tests) control
// the identity space.
func New(name string, ids *exchange.Sequence, factory exchange.OrderFactory, book *exchange.OrderBook, log *zap.SugaredLogger) *Trader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Trader{
		id:      ids.Next(),
		name:    name,
		factory: factory,
		book:    book,
		log:     log,
	}
}

func (t *Trader) ID() int64    { return t.id }
func (t *Trader) Name() string { return t.name }

func (t *Trader) AddStock(s stock.Stock) {
	t.stocks = append(t.stocks, s)
}

// Stocks returns a copy of the portfolio.
func (t *Trader) Stocks() []stock.Stock {
	out := make([]stock.Stock, len(t.stocks))
	copy(out, t.stocks)
	return out
}

// Orders returns the trader's submitted orders. The records are owned
// by the book; treat them as read-only.
func (t *Trader) Orders() []*exchange.Order {
	out := make([]*exchange.Order, len(t.orders))
	copy(out, t.orders)
	return out
}

// Buy submits a buy order for qty units of s at its current price.
func (t *Trader) Buy(s stock.Stock, qty int64) error {
	return t.place(s, qty, exchange.Buy)
}

// Sell submits a sell order for qty units of s at its current price.
func (t *Trader) Sell(s stock.Stock, qty int64) error {
	return t.place(s, qty, exchange.Sell)
}

// place reports failures to the caller instead of panicking, so one bad
// order never aborts the trader's broader loop.
func (t *Trader) place(s stock.Stock, qty int64, side exchange.Side) error {
	order, err := t.factory.Create(t.id, s.Price, qty, side)
	if err != nil {
		t.log.Warnw("order creation failed", "trader", t.name, "stock", s.Name, "err", err)
		return err
	}
	if _, err := t.book.Submit(order); err != nil {
		t.log.Warnw("order submission rejected", "trader", t.name, "stock", s.Name, "err", err)
		return err
	}
	t.orders = append(t.orders, order)
	return nil
}

// Trade applies the threshold strategy over the portfolio: buy whatever
// is priced under buyThreshold, sell whatever is priced over
// sellThreshold. Failed submissions are logged by place and skipped.
func (t *Trader) Trade(buyThreshold, sellThreshold decimal.Decimal, buyQty, sellQty int64) {
	for _, s := range t.stocks {
		switch {
		case s.Price.Cmp(buyThreshold) < 0:
			_ = t.Buy(s, buyQty)
		case s.Price.Cmp(sellThreshold) > 0:
			_ = t.Sell(s, sellQty)
		}
	}
}
