package stockhist

import (
	"fmt"

	"github.com/etnz/stockhist/date"
)

// Price is the closing price of an instrument on a trading day.
type Price struct {
	Date  date.Date `json:"date"`
	Close float64   `json:"close"`
}

// History is the daily closing price series of a single instrument.
//
// The series is a sparse calendar: any day without an entry is a non trading day.
// A History is immutable once built, it is safe for concurrent use.
type History struct {
	ticker Ticker
	prices *date.History[float64]
}

// NewHistory returns the History of ticker holding closes. closes may be empty.
func NewHistory(ticker Ticker, closes map[date.Date]float64) *History {
	return &History{ticker: ticker, prices: date.FromMap(closes)}
}

// Ticker returns the instrument this history is about.
func (h *History) Ticker() Ticker { return h.ticker }

// Len returns the number of trading days in the history.
func (h *History) Len() int { return h.prices.Len() }

// First returns the earliest trading day, and false if the history is empty.
func (h *History) First() (date.Date, bool) {
	on, _ := h.prices.Earliest()
	return on, h.Len() > 0
}

// Last returns the latest trading day, and false if the history is empty.
func (h *History) Last() (date.Date, bool) {
	on, _ := h.prices.Latest()
	return on, h.Len() > 0
}

// has reports whether on is a trading day.
func (h *History) has(on date.Date) bool {
	_, ok := h.prices.Get(on)
	return ok
}

// PriceOnDay returns the closing price on that exact day.
func (h *History) PriceOnDay(on date.Date) (float64, error) {
	p, ok := h.prices.Get(on)
	if !ok {
		return 0, fmt.Errorf("%v has no price on %v: %w", h.ticker, on, ErrNotFound)
	}
	return p, nil
}

// HistoricalPrices returns the closing prices of every trading day between start and end
// included, in chronological order.
//
// The result is empty if there is no trading day in the range.
func (h *History) HistoricalPrices(start, end date.Date) ([]Price, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end %v is before start %v: %w", end, start, ErrInvalidRange)
	}
	prices := make([]Price, 0)
	for on := range (date.Range{From: start, To: end}).Days() {
		p, ok := h.prices.Get(on)
		if !ok {
			continue
		}
		prices = append(prices, Price{Date: on, Close: p})
	}
	return prices, nil
}

// TrendUp reports whether the price is not decreasing between start and end.
//
// Both days must be trading days and end must be strictly after start. A flat price
// counts as trending up.
func (h *History) TrendUp(start, end date.Date) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("end %v must be after start %v: %w", end, start, ErrInvalidRange)
	}
	from, err := h.PriceOnDay(start)
	if err != nil {
		return false, err
	}
	to, err := h.PriceOnDay(end)
	if err != nil {
		return false, err
	}
	slope := (to - from) / float64(end.DaysSince(start))
	return slope >= 0, nil
}
