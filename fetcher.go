package stockhist

import (
	"context"
	"fmt"
	"maps"

	"github.com/etnz/stockhist/date"
)

// Fetcher retrieves the daily closing prices of an instrument from a data source.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, t Ticker) (map[date.Date]float64, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, t Ticker) (map[date.Date]float64, error)

// FetchDailyCloses calls f(ctx, t).
func (f FetcherFunc) FetchDailyCloses(ctx context.Context, t Ticker) (map[date.Date]float64, error) {
	return f(ctx, t)
}

// StaticFetcher serves closing prices held in memory.
type StaticFetcher map[Ticker]map[date.Date]float64

// FetchDailyCloses returns a copy of the prices of t, or an error if there are none.
func (s StaticFetcher) FetchDailyCloses(ctx context.Context, t Ticker) (map[date.Date]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	closes, ok := s[t]
	if !ok {
		return nil, fmt.Errorf("no price data for %v", t)
	}
	return maps.Clone(closes), nil
}
