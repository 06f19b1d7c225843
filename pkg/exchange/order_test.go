package exchange

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewOrderRejectsBadQuantity(t *testing.T) {
	for _, qty := range []int64{0, -1, -100} {
		_, err := NewOrder(1, decimal.NewFromInt(100), qty, Buy, Limit)
		if !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("quantity %d: expected ErrInvalidOrder, got %v", qty, err)
		}
	}
}

func TestNewOrderRejectsNegativePrice(t *testing.T) {
	_, err := NewOrder(1, decimal.NewFromInt(-1), 10, Sell, Limit)
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestNewOrderAcceptsZeroPrice(t *testing.T) {
	o, err := NewOrder(1, decimal.Zero, 10, Sell, Limit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Price().IsZero() || o.Remaining() != 10 {
		t.Errorf("unexpected order state: %+v", o.Snapshot())
	}
}

func TestReduceQuantity(t *testing.T) {
	o, err := NewOrder(1, decimal.NewFromInt(50), 10, Buy, Limit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := o.ReduceQuantity(4); err != nil {
		t.Fatalf("reduce by 4: %v", err)
	}
	if o.Remaining() != 6 || o.Quantity() != 10 {
		t.Errorf("expected remaining 6 of 10, got %d of %d", o.Remaining(), o.Quantity())
	}
	if o.Filled() {
		t.Error("order with remaining quantity reported as filled")
	}

	if err := o.ReduceQuantity(6); err != nil {
		t.Fatalf("reduce by 6: %v", err)
	}
	if !o.Filled() {
		t.Error("fully reduced order not terminal")
	}
}

func TestReduceQuantityRejectsBadAmounts(t *testing.T) {
	o, _ := NewOrder(1, decimal.NewFromInt(50), 10, Buy, Limit)

	if err := o.ReduceQuantity(-1); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("negative amount: expected ErrInvalidOrder, got %v", err)
	}
	if err := o.ReduceQuantity(11); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("amount above remaining: expected ErrInvalidOrder, got %v", err)
	}
	if o.Remaining() != 10 {
		t.Errorf("failed reductions must not change quantity, got %d", o.Remaining())
	}
}

func TestKindLabel(t *testing.T) {
	m, _ := NewOrder(1, decimal.NewFromInt(50), 1, Buy, Market)
	l, _ := NewOrder(1, decimal.NewFromInt(50), 1, Buy, Limit)

	if m.KindLabel() != "Market Order" {
		t.Errorf("expected Market Order, got %q", m.KindLabel())
	}
	if l.KindLabel() != "Limit Order" {
		t.Errorf("expected Limit Order, got %q", l.KindLabel())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	o, _ := NewOrder(7, decimal.NewFromInt(120), 10, Sell, Limit)
	snap := o.Snapshot()

	if err := o.ReduceQuantity(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Remaining != 10 {
		t.Errorf("snapshot mutated with the order, remaining %d", snap.Remaining)
	}
	if snap.TraderID != 7 || snap.Side != Sell {
		t.Errorf("snapshot identity wrong: %+v", snap)
	}
}

func TestFactoriesFixTheKind(t *testing.T) {
	price := decimal.NewFromInt(100)

	mo, err := MarketOrderFactory{}.Create(1, price, 5, Buy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mo.Kind() != Market {
		t.Errorf("expected market order, got %s", mo.Kind())
	}

	lo, err := LimitOrderFactory{}.Create(2, price, 5, Sell)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo.Kind() != Limit {
		t.Errorf("expected limit order, got %s", lo.Kind())
	}

	if _, err := (LimitOrderFactory{}).Create(2, price, 0, Sell); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("factory must delegate validation, got %v", err)
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	var s Sequence
	prev := int64(0)
	for i := 0; i < 100; i++ {
		n := s.Next()
		if n <= prev {
			t.Fatalf("sequence went backwards: %d after %d", n, prev)
		}
		prev = n
	}
}
