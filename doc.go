// Package stockhist provides the daily closing price histories of a fixed set of stocks,
// and the analytics computed on them.
//
// The core functionalities include:
//   - Price History: closing prices per trading day, queried by day or range of days.
//   - Buy Signal: a day is a buying opportunity when the 50 trading day moving average
//     is above the 200 trading day one.
//   - Trends and Extremes: whether a price goes up over a range, and its lowest and
//     highest values.
//   - Basket: the value of a set of holdings on a day, and its trend.
//
// Histories are retrieved through a Fetcher (see package alphavantage) and kept in a
// Registry. A Model is the entry point combining both with a basket.
//
// This package serves as the foundational logic for the `stockhist` command-line tool.
package stockhist
