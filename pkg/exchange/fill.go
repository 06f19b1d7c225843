package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fill records one matched trade between a buy and a sell order. Price
// is always the sell-side order's price: the sell is the
// liquidity-providing side, so its price is the conservative execution
// choice when both sides are priced.
type Fill struct {
	BuyTraderID  int64
	SellTraderID int64
	Price        decimal.Decimal
	Quantity     int64
	ExecutedAt   time.Time
}
