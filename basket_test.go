package stockhist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/etnz/stockhist/date"
)

func TestAddHolding(t *testing.T) {
	b := NewBasket()
	b.AddHolding(MSFT, 2)
	b.AddHolding(IBM, 1)
	b.AddHolding(MSFT, 3)
	if got := b.Quantity(MSFT); got != 5 {
		t.Errorf("Quantity(MSFT) = %d want 5", got)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d want 2", b.Len())
	}

	// Negative quantities reduce the holding.
	b.AddHolding(MSFT, -4)
	if got := b.Quantity(MSFT); got != 1 {
		t.Errorf("Quantity(MSFT) = %d want 1", got)
	}

	want := []Holding{{IBM, 1}, {MSFT, 1}}
	if diff := cmp.Diff(want, b.Holdings()); diff != "" {
		t.Errorf("Holdings() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddHoldingOrderIndependent(t *testing.T) {
	a, b := NewBasket(), NewBasket()
	a.AddHolding(AAPL, 7)
	a.AddHolding(AAPL, 11)
	b.AddHolding(AAPL, 11)
	b.AddHolding(AAPL, 7)
	if a.Quantity(AAPL) != b.Quantity(AAPL) || a.Quantity(AAPL) != 18 {
		t.Errorf("Quantity(AAPL) = %d and %d want 18", a.Quantity(AAPL), b.Quantity(AAPL))
	}

	var zero Basket
	zero.AddHolding(AAPL, 1)
	if zero.Quantity(AAPL) != 1 {
		t.Errorf("zero Basket Quantity(AAPL) = %d want 1", zero.Quantity(AAPL))
	}
}

// basketFixture holds 2 MSFT priced 10 and 1 IBM priced 5 on d.
func basketFixture(d date.Date) (*Basket, *Registry) {
	reg := NewRegistry()
	reg.Put(NewHistory(MSFT, map[date.Date]float64{d: 10, d.Add(1): 12}))
	reg.Put(NewHistory(IBM, map[date.Date]float64{d: 5, d.Add(1): 5, d.Add(2): 6}))
	b := NewBasket()
	b.AddHolding(MSFT, 2)
	b.AddHolding(IBM, 1)
	return b, reg
}

func TestBasketValue(t *testing.T) {
	d := day(2018, 7, 2)
	b, reg := basketFixture(d)

	got, err := b.Value(d, reg)
	if err != nil {
		t.Fatalf("Value(%v) error: %v", d, err)
	}
	if got != 25 {
		t.Errorf("Value(%v) = %v want 25", d, got)
	}

	got, err = b.Value(d.Add(1), reg)
	if err != nil {
		t.Fatalf("Value(%v) error: %v", d.Add(1), err)
	}
	if got != 29 {
		t.Errorf("Value(%v) = %v want 29", d.Add(1), got)
	}
}

func TestBasketValueDecimal(t *testing.T) {
	d := day(2018, 7, 2)
	reg := NewRegistry()
	reg.Put(NewHistory(AAPL, map[date.Date]float64{d: 0.1}))
	reg.Put(NewHistory(GOOG, map[date.Date]float64{d: 0.2}))
	b := NewBasket()
	b.AddHolding(AAPL, 1)
	b.AddHolding(GOOG, 1)
	got, err := b.Value(d, reg)
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if got != 0.3 {
		t.Errorf("Value() = %v want 0.3", got)
	}
}

func TestBasketValueErrors(t *testing.T) {
	d := day(2018, 7, 2)
	b, reg := basketFixture(d)

	if _, err := b.Value(d, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Value(nil registry) error = %v want ErrInvalidArgument", err)
	}
	if _, err := b.Value(d, NewRegistry()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Value(empty registry) error = %v want ErrInvalidArgument", err)
	}

	// MSFT has no price on d+2: no partial sum.
	_, err := b.Value(d.Add(2), reg)
	if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, ErrNotFound) {
		t.Errorf("Value(missing price) error = %v want ErrInvalidArgument wrapping ErrNotFound", err)
	}

	b.AddHolding(AAPL, 1)
	if _, err := b.Value(d, reg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Value(missing history) error = %v want ErrInvalidArgument", err)
	}
}

func TestBasketEmptyValue(t *testing.T) {
	d := day(2018, 7, 2)
	_, reg := basketFixture(d)
	got, err := NewBasket().Value(d, reg)
	if err != nil || got != 0 {
		t.Errorf("empty Basket Value() = %v, %v want 0, nil", got, err)
	}
}

func TestBasketTrendUp(t *testing.T) {
	d := day(2018, 7, 2)
	b, reg := basketFixture(d)

	up, err := b.TrendUp(d, d.Add(1), reg)
	if err != nil {
		t.Fatalf("TrendUp() error: %v", err)
	}
	if !up {
		t.Errorf("TrendUp(25 -> 29) = false want true")
	}

	// A flat basket is not trending up.
	flat := NewBasket()
	flat.AddHolding(IBM, 3)
	up, err = flat.TrendUp(d, d.Add(1), reg)
	if err != nil {
		t.Fatalf("TrendUp() error: %v", err)
	}
	if up {
		t.Errorf("TrendUp(15 -> 15) = true want false")
	}

	if _, err := b.TrendUp(d.Add(1), d, reg); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("TrendUp(end before start) error = %v want ErrInvalidRange", err)
	}
	if _, err := b.TrendUp(d, d, reg); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("TrendUp(same day) error = %v want ErrInvalidRange", err)
	}
	if _, err := b.TrendUp(d, d.Add(2), reg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TrendUp(missing price) error = %v want ErrInvalidArgument", err)
	}
}
