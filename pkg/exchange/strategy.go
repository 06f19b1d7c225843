package exchange

import (
	"sort"
	"time"
)

// MatchingStrategy pairs resting buy and sell orders. Both sequences
// are handed over exclusively for the duration of one call and come
// back with matched volume removed; implementations keep no state
// about the book and retain no order references past the call.
type MatchingStrategy interface {
	Match(buys, sells []*Order) (restingBuys, restingSells []*Order, fills []Fill)
}

// PriceTimeStrategy matches by price first and submission time second:
// the lowest ask and the highest bid trade first, earlier orders win
// ties at the same price.
type PriceTimeStrategy struct{}

func NewPriceTimeStrategy() *PriceTimeStrategy { return &PriceTimeStrategy{} }

// Match sorts both sides by (price, creation time) and walks them with
// two cursors, trading while the best ask is at or below the best bid.
// Once that fails no later pair can cross, since both sides are price
// sorted. O(n log n) per cycle.
func (s *PriceTimeStrategy) Match(buys, sells []*Order) ([]*Order, []*Order, []Fill) {
	// Stable sorts keep admission order for equal (price, time) keys.
	sort.SliceStable(sells, func(i, j int) bool {
		if c := sells[i].price.Cmp(sells[j].price); c != 0 {
			return c < 0
		}
		return sells[i].createdAt.Before(sells[j].createdAt)
	})
	sort.SliceStable(buys, func(i, j int) bool {
		if c := buys[i].price.Cmp(buys[j].price); c != 0 {
			return c > 0
		}
		return buys[i].createdAt.Before(buys[j].createdAt)
	})

	var fills []Fill
	bi, si := 0, 0
	for bi < len(buys) && si < len(sells) {
		buy, sell := buys[bi], sells[si]
		if sell.price.Cmp(buy.price) > 0 {
			break
		}

		qty := min(buy.remaining, sell.remaining)
		// qty is bounded by both remainings, so neither reduction can fail.
		_ = buy.ReduceQuantity(qty)
		_ = sell.ReduceQuantity(qty)

		fills = append(fills, Fill{
			BuyTraderID:  buy.traderID,
			SellTraderID: sell.traderID,
			Price:        sell.price,
			Quantity:     qty,
			ExecutedAt:   time.Now(),
		})

		if buy.Filled() {
			bi++
		}
		if sell.Filled() {
			si++
		}
	}

	return compactResting(buys), compactResting(sells), fills
}

// compactResting drops terminal orders in place without reordering the
// survivors, so time priority carries over to the next cycle.
func compactResting(orders []*Order) []*Order {
	out := orders[:0]
	for _, o := range orders {
		if !o.Filled() {
			out = append(out, o)
		}
	}
	return out
}
