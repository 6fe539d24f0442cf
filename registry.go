package stockhist

import (
	"fmt"
	"slices"
	"sync"

	"github.com/etnz/stockhist/date"
)

// Registry holds at most one History per Ticker.
//
// It is safe for concurrent use: readers share the registry, Put takes it exclusively.
type Registry struct {
	mu        sync.RWMutex
	histories map[Ticker]*History
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{histories: make(map[Ticker]*History)}
}

// Put registers h, replacing any previous history for the same ticker.
func (r *Registry) Put(h *History) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.histories == nil {
		r.histories = make(map[Ticker]*History)
	}
	r.histories[h.Ticker()] = h
}

// Get returns the History of t.
func (r *Registry) Get(t Ticker) (*History, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.histories[t]
	return h, ok
}

// Len returns the number of registered histories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.histories)
}

// Tickers returns the registered tickers in alphabetical order.
func (r *Registry) Tickers() []Ticker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tickers := make([]Ticker, 0, len(r.histories))
	for t := range r.histories {
		tickers = append(tickers, t)
	}
	slices.Sort(tickers)
	return tickers
}

// lookup is Get as an error.
func (r *Registry) lookup(t Ticker) (*History, error) {
	h, ok := r.Get(t)
	if !ok {
		return nil, fmt.Errorf("%v is not registered: %w", t, ErrUnknownSymbol)
	}
	return h, nil
}

// MinPrice returns the lowest closing price of t between start and end included.
//
// The scan starts from the price on start, which must be a trading day. Other days
// without a price are skipped.
func (r *Registry) MinPrice(t Ticker, start, end date.Date) (float64, error) {
	h, err := r.lookup(t)
	if err != nil {
		return 0, err
	}
	lowest, err := h.PriceOnDay(start)
	if err != nil {
		return 0, err
	}
	for on := range (date.Range{From: start, To: end}).Days() {
		p, err := h.PriceOnDay(on)
		if err != nil {
			continue
		}
		if p < lowest {
			lowest = p
		}
	}
	return lowest, nil
}

// MaxPrice returns the highest closing price of t between start and end included.
//
// Days without a price are skipped. The scan starts from 0, so a range without any
// price, or with negative prices only, returns 0.
func (r *Registry) MaxPrice(t Ticker, start, end date.Date) (float64, error) {
	h, err := r.lookup(t)
	if err != nil {
		return 0, err
	}
	highest := 0.0
	for on := range (date.Range{From: start, To: end}).Days() {
		p, err := h.PriceOnDay(on)
		if err != nil {
			continue
		}
		if p > highest {
			highest = p
		}
	}
	return highest, nil
}
