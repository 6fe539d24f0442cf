package alphavantage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/etnz/stockhist/date"
)

// dailyRow is a line of the TIME_SERIES_DAILY csv payload:
//
//	timestamp,open,high,low,close,volume
//	2018-07-03,100.4800,100.6300,98.9400,99.0500,14670255
type dailyRow struct {
	Timestamp string `csv:"timestamp"`
	Close     string `csv:"close"`
}

// seriesPath locates the daily series in the json payload.
const seriesPath = `$["Time Series (Daily)"]`

// errorPaths locate the messages the API returns instead of a series, with a 200 status.
var errorPaths = []string{`$["Error Message"]`, `$["Note"]`, `$["Information"]`}

// ParseCSV reads the daily closes of a TIME_SERIES_DAILY csv payload.
//
// The API answers errors with a json document even when csv was requested, such
// document is returned as an error.
func ParseCSV(body []byte) (map[date.Date]float64, error) {
	body = bytes.TrimSpace(body)
	if bytes.HasPrefix(body, []byte("{")) {
		return nil, apiError(body)
	}
	var rows []dailyRow
	if err := gocsv.UnmarshalBytes(body, &rows); err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	closes := make(map[date.Date]float64, len(rows))
	for i, row := range rows {
		on, err := date.Parse(strings.TrimSpace(row.Timestamp))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		p, err := parseClose(row.Close)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		closes[on] = p
	}
	return closes, nil
}

// ParseJSON reads the daily closes of a TIME_SERIES_DAILY json payload.
//
//	"Time Series (Daily)": {
//	    "2018-07-03": {
//	        "1. open": "100.4800",
//	        "4. close": "99.0500",
//	        ...
func ParseJSON(body []byte) (map[date.Date]float64, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	jval, err := jsonpath.Get(seriesPath, jobj)
	if err != nil {
		return nil, apiError(body)
	}
	series, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an object", seriesPath)
	}
	closes := make(map[date.Date]float64, len(series))
	for day, fields := range series {
		on, err := date.Parse(day)
		if err != nil {
			return nil, err
		}
		values, ok := fields.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: entry is not an object", day)
		}
		closing, ok := values["4. close"].(string)
		if !ok {
			return nil, fmt.Errorf("%s: missing close", day)
		}
		p, err := parseClose(closing)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}
		closes[on] = p
	}
	return closes, nil
}

// parseClose reads a closing price, that cannot be negative.
func parseClose(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid close %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid close %q: negative price", s)
	}
	return d.InexactFloat64(), nil
}

// apiError returns the message of an error document.
func apiError(body []byte) error {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	for _, path := range errorPaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		if msg, ok := jval.(string); ok {
			return fmt.Errorf("alphavantage: %s", msg)
		}
	}
	return errors.New("alphavantage: no daily series in response")
}
