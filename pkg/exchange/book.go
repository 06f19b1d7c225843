// Package exchange implements the order book and matching engine: the
// concurrent repository of resting orders, the order lifecycle, and
// the pluggable matching strategy that pairs buys against sells.
package exchange

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// Ack acknowledges an accepted submission. Seq records admission order
// for diagnostics only; matching never reads it.
type Ack struct {
	Seq        int64
	AdmittedAt time.Time
}

// OrderBook owns the canonical resting orders. A single mutex
// serializes every access to the collection; the matching cycle
// releases it while the strategy runs so a slow match never starves
// concurrent submissions.
type OrderBook struct {
	mu        sync.Mutex
	resting   deque.Deque[*Order]
	strategy  MatchingStrategy
	seq       int64
	callbacks []func([]Fill)

	log *zap.Logger
}

func NewOrderBook(log *zap.Logger) *OrderBook {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderBook{log: log}
}

// SetStrategy replaces the active matching strategy. It takes effect on
// the next cycle; an in-flight cycle keeps the strategy it captured at
// snapshot time.
func (b *OrderBook) SetStrategy(s MatchingStrategy) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.strategy = s
}

// RegisterFillCallback adds fn to the set invoked after every matching
// cycle that produced fills. Callbacks run outside the book lock.
func (b *OrderBook) RegisterFillCallback(fn func([]Fill)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks = append(b.callbacks, fn)
}

// Submit inserts order into the book and makes it visible to the next
// matching cycle. A nil or terminal order is rejected without touching
// book state.
func (b *OrderBook) Submit(order *Order) (Ack, error) {
	if order == nil {
		b.log.Warn("submission rejected", zap.String("reason", "nil order"))
		return Ack{}, fmt.Errorf("%w: nil order", ErrRejectedOrder)
	}
	if order.Filled() {
		b.log.Warn("submission rejected",
			zap.String("reason", "no remaining quantity"),
			zap.Int64("trader_id", order.traderID))
		return Ack{}, fmt.Errorf("%w: order has no remaining quantity", ErrRejectedOrder)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.resting.PushBack(order)
	return Ack{Seq: b.seq, AdmittedAt: time.Now()}, nil
}

// RunMatchingCycle snapshots and clears the book, runs the captured
// strategy outside the lock, then merges the surviving orders back in.
// Submissions whose Submit call returned before the snapshot are
// visible to this cycle; submissions racing with it land in the next
// one. With no strategy configured the snapshot is reinserted
// unchanged and ErrNoStrategy is returned.
func (b *OrderBook) RunMatchingCycle() ([]Fill, error) {
	b.mu.Lock()
	strategy := b.strategy
	buys := make([]*Order, 0, b.resting.Len())
	sells := make([]*Order, 0, b.resting.Len())
	for b.resting.Len() > 0 {
		o := b.resting.PopFront()
		if o.side == Buy {
			buys = append(buys, o)
		} else {
			sells = append(sells, o)
		}
	}
	b.mu.Unlock()

	if strategy == nil {
		b.merge(buys, sells)
		b.log.Warn("matching cycle skipped", zap.Error(ErrNoStrategy))
		return nil, ErrNoStrategy
	}

	restingBuys, restingSells, fills := strategy.Match(buys, sells)

	cbs := b.merge(restingBuys, restingSells)

	if len(fills) > 0 {
		b.log.Debug("matching cycle complete",
			zap.Int("fills", len(fills)),
			zap.Int("resting_buys", len(restingBuys)),
			zap.Int("resting_sells", len(restingSells)))
		for _, cb := range cbs {
			cb(fills)
		}
	}

	return fills, nil
}

// merge reinserts surviving orders under the lock, skipping any that
// are terminal so a zero-quantity order is never visible again. It
// returns the registered callbacks so the caller can run them after
// the lock is released.
func (b *OrderBook) merge(buys, sells []*Order) []func([]Fill) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range buys {
		if !o.Filled() {
			b.resting.PushBack(o)
		}
	}
	for _, o := range sells {
		if !o.Filled() {
			b.resting.PushBack(o)
		}
	}
	cbs := make([]func([]Fill), len(b.callbacks))
	copy(cbs, b.callbacks)
	return cbs
}

// Snapshot returns read-only copies of the current resting orders.
func (b *OrderBook) Snapshot() []OrderSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]OrderSnapshot, 0, b.resting.Len())
	for i := 0; i < b.resting.Len(); i++ {
		out = append(out, b.resting.At(i).Snapshot())
	}
	return out
}

// Len reports the number of resting orders.
func (b *OrderBook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resting.Len()
}

// Dump writes a human-readable listing of the resting orders, for
// display and debugging only.
func (b *OrderBook) Dump(w io.Writer) {
	snap := b.Snapshot()
	fmt.Fprintf(w, "Current book content (%d resting orders)\n", len(snap))
	fmt.Fprintln(w, "Trader\tPrice\tRemaining\tSide\tKind")
	for _, o := range snap {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", o.TraderID, o.Price, o.Remaining, o.Side, o.Kind)
	}
}
