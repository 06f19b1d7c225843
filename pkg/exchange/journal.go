package exchange

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FillEvent is a journaled fill with a unique event id.
type FillEvent struct {
	ID   string
	Fill Fill
}

// FillJournal keeps every fill produced by the book in memory, indexed
// by trader. Register Record with the book's fill callback to feed it.
type FillJournal struct {
	mu       sync.RWMutex
	events   []FillEvent
	byTrader map[int64][]FillEvent
	volume   int64
	notional decimal.Decimal
}

func NewFillJournal() *FillJournal {
	return &FillJournal{byTrader: make(map[int64][]FillEvent)}
}

func (j *FillJournal) Record(fills []Fill) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, f := range fills {
		ev := FillEvent{ID: uuid.New().String(), Fill: f}
		j.events = append(j.events, ev)
		j.byTrader[f.BuyTraderID] = append(j.byTrader[f.BuyTraderID], ev)
		j.byTrader[f.SellTraderID] = append(j.byTrader[f.SellTraderID], ev)
		j.volume += f.Quantity
		j.notional = j.notional.Add(f.Price.Mul(decimal.NewFromInt(f.Quantity)))
	}
}

// Events returns a copy of every recorded fill event in execution order.
func (j *FillJournal) Events() []FillEvent {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]FillEvent, len(j.events))
	copy(out, j.events)
	return out
}

// FillsFor returns the fill events a trader participated in, on either
// side.
func (j *FillJournal) FillsFor(traderID int64) []FillEvent {
	j.mu.RLock()
	defer j.mu.RUnlock()
	evs := j.byTrader[traderID]
	out := make([]FillEvent, len(evs))
	copy(out, evs)
	return out
}

// Volume returns the total quantity traded.
func (j *FillJournal) Volume() int64 {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.volume
}

// Notional returns the total traded value, priced at execution.
func (j *FillJournal) Notional() decimal.Decimal {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.notional
}
