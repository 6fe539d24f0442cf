package stockhist

import (
	"time"

	"github.com/etnz/stockhist/date"
)

// day is a helper to write dates in tests.
func day(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }

// daily assigns prices to consecutive calendar days starting on from.
func daily(from date.Date, prices ...float64) map[date.Date]float64 {
	closes := make(map[date.Date]float64, len(prices))
	for i, p := range prices {
		closes[from.Add(i)] = p
	}
	return closes
}

// weekdays assigns prices to consecutive weekdays starting on from, and returns the days
// used in order.
func weekdays(from date.Date, prices ...float64) ([]date.Date, map[date.Date]float64) {
	days := make([]date.Date, 0, len(prices))
	closes := make(map[date.Date]float64, len(prices))
	on := from
	for _, p := range prices {
		for on.Weekday() == time.Saturday || on.Weekday() == time.Sunday {
			on = on.Add(1)
		}
		days = append(days, on)
		closes[on] = p
		on = on.Add(1)
	}
	return days, closes
}

// ramp returns n prices from start, each one step above the previous.
func ramp(n int, start, step float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = start + float64(i)*step
	}
	return prices
}
