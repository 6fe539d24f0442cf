package stockhist

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/etnz/stockhist/date"
)

// DefaultConcurrency is the number of histories fetched in parallel by RegisterAll.
const DefaultConcurrency = 4

// Extremes are the lowest and highest closing prices over a range of days.
type Extremes struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Model is the entry point to query price histories and the basket.
//
// Histories must be registered before they can be queried. Queries on a ticker that is not
// registered fail with ErrUnknownSymbol.
type Model struct {
	fetcher     Fetcher
	registry    *Registry
	log         zerolog.Logger
	concurrency int

	mu     sync.Mutex // guards basket
	basket *Basket
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithBasket sets the basket valued by the model, instead of an empty one. A nil basket is ignored.
func WithBasket(b *Basket) Option {
	return func(m *Model) {
		if b != nil {
			m.basket = b
		}
	}
}

// WithConcurrency sets the maximum number of parallel fetches in RegisterAll.
func WithConcurrency(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// NewModel returns a Model retrieving histories from fetcher.
func NewModel(fetcher Fetcher, opts ...Option) *Model {
	m := &Model{
		fetcher:     fetcher,
		registry:    NewRegistry(),
		log:         zerolog.Nop(),
		concurrency: DefaultConcurrency,
		basket:      NewBasket(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the histories registered so far.
func (m *Model) Registry() *Registry { return m.registry }

// Registered reports whether t has a history.
func (m *Model) Registered(t Ticker) bool {
	_, ok := m.registry.Get(t)
	return ok
}

// Tickers returns the registered tickers.
func (m *Model) Tickers() []Ticker { return m.registry.Tickers() }

// fetch builds the history of t. A failed fetch gives an empty history.
func (m *Model) fetch(ctx context.Context, t Ticker) *History {
	closes, err := m.fetcher.FetchDailyCloses(ctx, t)
	if err != nil {
		m.log.Warn().Err(err).Stringer("ticker", t).Msg("fetch failed, registering an empty history")
		closes = nil
	}
	h := NewHistory(t, closes)
	m.log.Info().Stringer("ticker", t).Int("days", h.Len()).Msg("register")
	return h
}

// Register retrieves the history of t and registers it, replacing any previous one.
//
// Fetch errors are not returned: t is then registered with an empty history, and every
// query on it will report missing prices.
func (m *Model) Register(ctx context.Context, t Ticker) {
	m.registry.Put(m.fetch(ctx, t))
}

// RegisterAll registers tickers, fetching their histories concurrently.
//
// Like Register, fetch errors give empty histories. The only error returned is the
// context's, in which case tickers not fetched yet are not registered.
func (m *Model) RegisterAll(ctx context.Context, tickers ...Ticker) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for _, t := range tickers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.registry.Put(m.fetch(ctx, t))
			return nil
		})
	}
	return g.Wait()
}

// AddHolding adds quantity shares of t to the basket.
func (m *Model) AddHolding(t Ticker, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.basket.AddHolding(t, quantity)
}

// Holdings returns the basket content.
func (m *Model) Holdings() []Holding {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.basket.Holdings()
}

// PriceOfDay returns the closing price of t on that day.
func (m *Model) PriceOfDay(t Ticker, on date.Date) (float64, error) {
	h, err := m.registry.lookup(t)
	if err != nil {
		return 0, err
	}
	return h.PriceOnDay(on)
}

// SignalForDay reports whether that day is a buying opportunity for t.
func (m *Model) SignalForDay(t Ticker, on date.Date) (bool, error) {
	h, err := m.registry.lookup(t)
	if err != nil {
		return false, err
	}
	return h.BuyOpportunity(on), nil
}

// SignalsInRange returns the buying opportunities of t between start and end included.
func (m *Model) SignalsInRange(t Ticker, start, end date.Date) ([]date.Date, error) {
	h, err := m.registry.lookup(t)
	if err != nil {
		return nil, err
	}
	return h.BuyOpportunities(start, end)
}

// HistoryInRange returns the closing prices of t between start and end included.
func (m *Model) HistoryInRange(t Ticker, start, end date.Date) ([]Price, error) {
	h, err := m.registry.lookup(t)
	if err != nil {
		return nil, err
	}
	return h.HistoricalPrices(start, end)
}

// StockTrendUp reports whether the price of t is not decreasing between start and end.
func (m *Model) StockTrendUp(t Ticker, start, end date.Date) (bool, error) {
	h, err := m.registry.lookup(t)
	if err != nil {
		return false, err
	}
	return h.TrendUp(start, end)
}

// RangeExtremes returns the lowest and highest closing prices of t between start and end
// included.
func (m *Model) RangeExtremes(t Ticker, start, end date.Date) (Extremes, error) {
	lowest, err := m.registry.MinPrice(t, start, end)
	if err != nil {
		return Extremes{}, err
	}
	highest, err := m.registry.MaxPrice(t, start, end)
	if err != nil {
		return Extremes{}, err
	}
	return Extremes{Min: lowest, Max: highest}, nil
}

// TotalBasketPrice returns the value of the basket on that day.
func (m *Model) TotalBasketPrice(on date.Date) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.basket.Value(on, m.registry)
}

// BasketTrendUp reports whether the basket value strictly increased between start and end.
func (m *Model) BasketTrendUp(start, end date.Date) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.basket.TrendUp(start, end, m.registry)
}
