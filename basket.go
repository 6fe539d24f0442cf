package stockhist

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/etnz/stockhist/date"
)

// Holding is a quantity of shares of one instrument.
type Holding struct {
	Ticker   Ticker `json:"ticker"`
	Quantity int    `json:"quantity"`
}

// Basket is a weighted collection of instruments, valued as a single portfolio.
//
// A Basket is not safe for concurrent use.
type Basket struct {
	quantities map[Ticker]int
}

// NewBasket returns an empty Basket.
func NewBasket() *Basket {
	return &Basket{quantities: make(map[Ticker]int)}
}

// AddHolding adds quantity shares of t to the basket.
//
// Quantities of the same ticker are summed. A negative quantity is accepted and reduces
// the holding.
func (b *Basket) AddHolding(t Ticker, quantity int) {
	if b.quantities == nil {
		b.quantities = make(map[Ticker]int)
	}
	b.quantities[t] += quantity
}

// Quantity returns the number of shares of t held.
func (b *Basket) Quantity(t Ticker) int { return b.quantities[t] }

// Len returns the number of distinct tickers held.
func (b *Basket) Len() int { return len(b.quantities) }

// Holdings returns the basket content ordered by ticker.
func (b *Basket) Holdings() []Holding {
	holdings := make([]Holding, 0, len(b.quantities))
	for t, q := range b.quantities {
		holdings = append(holdings, Holding{Ticker: t, Quantity: q})
	}
	slices.SortFunc(holdings, func(a, b Holding) int { return int(a.Ticker) - int(b.Ticker) })
	return holdings
}

// Value returns the total value of the basket at the closing prices of that day.
//
// Every held ticker must have a history in reg, with a price on that day: there is no
// partial valuation.
func (b *Basket) Value(on date.Date, reg *Registry) (float64, error) {
	if reg == nil || reg.Len() == 0 {
		return 0, fmt.Errorf("cannot value basket on %v without histories: %w", on, ErrInvalidArgument)
	}
	total := decimal.Zero
	for _, holding := range b.Holdings() {
		h, ok := reg.Get(holding.Ticker)
		if !ok {
			return 0, fmt.Errorf("cannot value basket: no history for %v: %w", holding.Ticker, ErrInvalidArgument)
		}
		p, err := h.PriceOnDay(on)
		if err != nil {
			return 0, fmt.Errorf("cannot value basket on %v: %w: %w", on, ErrInvalidArgument, err)
		}
		total = total.Add(decimal.NewFromFloat(p).Mul(decimal.NewFromInt(int64(holding.Quantity))))
	}
	return total.InexactFloat64(), nil
}

// TrendUp reports whether the basket value strictly increased between start and end.
//
// end must be after start. Unlike History.TrendUp a flat value is not trending up.
func (b *Basket) TrendUp(start, end date.Date, reg *Registry) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("end %v must be after start %v: %w", end, start, ErrInvalidRange)
	}
	to, err := b.Value(end, reg)
	if err != nil {
		return false, err
	}
	from, err := b.Value(start, reg)
	if err != nil {
		return false, err
	}
	return to > from, nil
}
