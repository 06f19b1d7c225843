package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joripage/exchange-sim/pkg/exchange"
)

const (
	numOrders     = 1_000_000
	ordersPerTick = 10_000
	minPrice      = 100
	maxPrice      = 200
	minQty        = 1
	maxQty        = 100
)

func randomOrder(rng *rand.Rand, traderID int64) *exchange.Order {
	side := exchange.Buy
	if rng.Intn(2) == 0 {
		side = exchange.Sell
	}
	price := decimal.NewFromInt(int64(minPrice + rng.Intn(maxPrice-minPrice+1)))
	qty := int64(rng.Intn(maxQty-minQty+1) + minQty)

	order, err := exchange.NewOrder(traderID, price, qty, side, exchange.Limit)
	if err != nil {
		panic(err)
	}
	return order
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	book := exchange.NewOrderBook(nil)
	book.SetStrategy(exchange.NewPriceTimeStrategy())
	journal := exchange.NewFillJournal()
	book.RegisterFillCallback(journal.Record)

	start := time.Now()
	cycles := 0
	for i := 0; i < numOrders; i++ {
		if _, err := book.Submit(randomOrder(rng, int64(i+1))); err != nil {
			panic(err)
		}
		if (i+1)%ordersPerTick == 0 {
			if _, err := book.RunMatchingCycle(); err != nil {
				panic(err)
			}
			cycles++
		}
	}
	if _, err := book.RunMatchingCycle(); err != nil {
		panic(err)
	}
	cycles++
	elapsed := time.Since(start)

	fmt.Println("--------")
	fmt.Printf("Total Orders      : %d\n", numOrders)
	fmt.Printf("Matching Cycles   : %d\n", cycles)
	fmt.Printf("Total Fills       : %d\n", len(journal.Events()))
	fmt.Printf("Total Fill Volume : %d\n", journal.Volume())
	fmt.Printf("Resting Orders    : %d\n", book.Len())
	fmt.Printf("Time Taken        : %s\n", elapsed)
}
