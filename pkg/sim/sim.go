// Package sim drives the exchange simulation: concurrent traders place
// threshold orders against one shared book while a ticker fires
// matching cycles.
package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/joripage/exchange-sim/pkg/exchange"
	"github.com/joripage/exchange-sim/pkg/stock"
	"github.com/joripage/exchange-sim/pkg/trader"
)

type Config struct {
	Traders       int
	Rounds        int
	MatchInterval time.Duration
	BuyThreshold  decimal.Decimal
	SellThreshold decimal.Decimal
	BuyQty        int64
	SellQty       int64
	Stocks        []stock.Stock
}

type Simulation struct {
	cfg     Config
	book    *exchange.OrderBook
	journal *exchange.FillJournal
	traders []*trader.Trader

	log *zap.Logger
}

// New wires a book with the price-time strategy, a fill journal, and
// cfg.Traders agents sharing one id sequence. Traders alternate between
// limit and market order factories; both kinds match on their carried
// price.
func New(cfg Config, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}

	book := exchange.NewOrderBook(log.Named("book"))
	book.SetStrategy(exchange.NewPriceTimeStrategy())

	journal := exchange.NewFillJournal()
	book.RegisterFillCallback(journal.Record)

	ids := &exchange.Sequence{}
	traders := make([]*trader.Trader, 0, cfg.Traders)
	for i := 0; i < cfg.Traders; i++ {
		var factory exchange.OrderFactory = exchange.LimitOrderFactory{}
		if i%2 == 1 {
			factory = exchange.MarketOrderFactory{}
		}
		tr := trader.New(fmt.Sprintf("trader-%d", i+1), ids, factory, book, log.Sugar())
		for _, s := range cfg.Stocks {
			tr.AddStock(s)
		}
		traders = append(traders, tr)
	}

	return &Simulation{
		cfg:     cfg,
		book:    book,
		journal: journal,
		traders: traders,
		log:     log,
	}
}

func (s *Simulation) Book() *exchange.OrderBook      { return s.book }
func (s *Simulation) Journal() *exchange.FillJournal { return s.journal }
func (s *Simulation) Traders() []*trader.Trader      { return s.traders }

// Run blocks until every trader finishes its rounds or ctx is
// cancelled. Matching cycles fire every MatchInterval and once more at
// the end to sweep whatever still crosses.
func (s *Simulation) Run(ctx context.Context) error {
	if len(s.cfg.Stocks) == 0 {
		return fmt.Errorf("no stocks configured")
	}

	g, gctx := errgroup.WithContext(ctx)

	dearest, cheapest := priceExtremes(s.cfg.Stocks)

	for _, tr := range s.traders {
		tr := tr
		g.Go(func() error {
			for i := 0; i < s.cfg.Rounds; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				tr.Trade(s.cfg.BuyThreshold, s.cfg.SellThreshold, s.cfg.BuyQty, s.cfg.SellQty)

				// Threshold flow alone never crosses itself (sells are
				// always priced above buys), so each round the trader
				// also lifts the dearest stock and hits the cheapest
				// one, providing marketable flow for the cycles.
				_ = tr.Buy(dearest, s.cfg.BuyQty)
				_ = tr.Sell(cheapest, s.cfg.SellQty)
			}
			return nil
		})
	}

	stop := make(chan struct{})
	matcherDone := make(chan struct{})
	go func() {
		defer close(matcherDone)
		ticker := time.NewTicker(s.cfg.MatchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runCycle()
			case <-stop:
				return
			case <-gctx.Done():
				return
			}
		}
	}()

	err := g.Wait()
	close(stop)
	<-matcherDone

	s.runCycle()
	return err
}

// priceExtremes returns the highest- and lowest-priced stocks of the
// universe.
func priceExtremes(stocks []stock.Stock) (dearest, cheapest stock.Stock) {
	dearest, cheapest = stocks[0], stocks[0]
	for _, s := range stocks[1:] {
		if s.Price.Cmp(dearest.Price) > 0 {
			dearest = s
		}
		if s.Price.Cmp(cheapest.Price) < 0 {
			cheapest = s
		}
	}
	return dearest, cheapest
}

func (s *Simulation) runCycle() {
	fills, err := s.book.RunMatchingCycle()
	if err != nil {
		s.log.Warn("matching cycle failed", zap.Error(err))
		return
	}
	if len(fills) > 0 {
		s.log.Info("matching cycle",
			zap.Int("fills", len(fills)),
			zap.Int("resting", s.book.Len()))
	}
}

// Summary writes the final book listing and journal totals.
func (s *Simulation) Summary(w io.Writer) {
	s.book.Dump(w)
	fmt.Fprintf(w, "fills: %d  volume: %d  notional: %s\n",
		len(s.journal.Events()), s.journal.Volume(), s.journal.Notional())
}
