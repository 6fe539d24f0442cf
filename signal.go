package stockhist

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/etnz/stockhist/date"
)

const (
	// ShortWindow and LongWindow are the moving average lengths, in trading days, compared
	// by BuyOpportunity.
	ShortWindow = 50
	LongWindow  = 200

	// MinSignalHistory is the number of trading days a history needs before it can
	// produce any buying opportunity.
	MinSignalHistory = 200

	// maxGap is the number of consecutive calendar days without a price tolerated while
	// walking back for the next sample. Longer gaps are taken as the start of the history.
	maxGap = 10
)

// TrailingAverage returns the mean closing price of the last 'days' trading days ending on
// 'on' included.
//
// 'on' must be a trading day. Walking back, a sample is searched for at most maxGap
// calendar days, otherwise it fails with ErrInsufficientHistory. Walking past the earliest
// trading day fails the same way.
func (h *History) TrailingAverage(days int, on date.Date) (float64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("number of days must be positive, got %d: %w", days, ErrInvalidArgument)
	}
	if !h.has(on) {
		return 0, fmt.Errorf("cannot average %v on %v: %w", h.ticker, on, ErrNotFound)
	}
	first, _ := h.First()

	samples := make(stats.Float64Data, 0, days)
	day, last := on, on
	for len(samples) < days {
		misses := 0
		for misses < maxGap && !h.has(day) && !day.Before(first) {
			day = day.Add(-1)
			misses++
		}
		if misses == maxGap || day.Before(first) {
			return 0, fmt.Errorf("%d-day average of %v on %v: %d samples, no earlier price within %d days of %v: %w", days, h.ticker, on, len(samples), maxGap, last, ErrInsufficientHistory)
		}
		p, _ := h.prices.Get(day)
		samples = append(samples, p)
		last = day
		day = day.Add(-1)
	}
	return stats.Mean(samples)
}

// BuyOpportunity reports whether the short moving average is above the long one on that
// day.
//
// It never fails: a day that is not a trading day, a history shorter than
// MinSignalHistory, or an average that cannot be computed are not opportunities.
// It is a level condition, true on every day the short average stays above the long one.
func (h *History) BuyOpportunity(on date.Date) bool {
	if h.Len() < MinSignalHistory || !h.has(on) {
		return false
	}
	short, err := h.TrailingAverage(ShortWindow, on)
	if err != nil {
		return false
	}
	long, err := h.TrailingAverage(LongWindow, on)
	if err != nil {
		return false
	}
	return short > long
}

// BuyOpportunities returns the trading days between start and end included that are
// buying opportunities, in chronological order.
func (h *History) BuyOpportunities(start, end date.Date) ([]date.Date, error) {
	prices, err := h.HistoricalPrices(start, end)
	if err != nil {
		return nil, err
	}
	days := make([]date.Date, 0)
	for _, p := range prices {
		if h.BuyOpportunity(p.Date) {
			days = append(days, p.Date)
		}
	}
	return days, nil
}
