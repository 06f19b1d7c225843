package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joripage/exchange-sim/config"
	"github.com/joripage/exchange-sim/pkg/logging"
	"github.com/joripage/exchange-sim/pkg/sim"
	"github.com/joripage/exchange-sim/pkg/stock"
)

func main() {
	cfgPath := flag.String("config", "./config/sim.yaml", "path to config file")
	dev := flag.Bool("dev", false, "human-readable console logging")
	flag.Parse()

	logger, err := logging.Init(zapcore.InfoLevel, *dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logging:", err)
		os.Exit(1)
	}
	defer logger.Sync() // nolint

	appCfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	simCfg, err := buildSimConfig(appCfg.Sim)
	if err != nil {
		logger.Fatal("invalid sim config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Info("shutdown signal received")
		cancel()
	}()

	logger.Info("simulation starting",
		zap.String("service", appCfg.ServiceName),
		zap.Int("traders", simCfg.Traders),
		zap.Int("rounds", simCfg.Rounds),
		zap.Duration("match_interval", simCfg.MatchInterval))

	s := sim.New(simCfg, logger)
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation aborted", zap.Error(err))
	}

	s.Summary(os.Stdout)
}

func buildSimConfig(c *config.SimConfig) (sim.Config, error) {
	if c == nil {
		return sim.Config{}, fmt.Errorf("missing sim section")
	}

	buyThreshold, err := decimal.NewFromString(c.BuyThreshold)
	if err != nil {
		return sim.Config{}, fmt.Errorf("buy_threshold: %w", err)
	}
	sellThreshold, err := decimal.NewFromString(c.SellThreshold)
	if err != nil {
		return sim.Config{}, fmt.Errorf("sell_threshold: %w", err)
	}

	stocks := make([]stock.Stock, 0, len(c.Stocks))
	for _, sc := range c.Stocks {
		price, err := decimal.NewFromString(sc.Price)
		if err != nil {
			return sim.Config{}, fmt.Errorf("stock %s price: %w", sc.Name, err)
		}
		stocks = append(stocks, stock.New(sc.Name, price))
	}

	return sim.Config{
		Traders:       c.Traders,
		Rounds:        c.Rounds,
		MatchInterval: time.Duration(c.MatchIntervalMS) * time.Millisecond,
		BuyThreshold:  buyThreshold,
		SellThreshold: sellThreshold,
		BuyQty:        c.BuyQty,
		SellQty:       c.SellQty,
		Stocks:        stocks,
	}, nil
}
