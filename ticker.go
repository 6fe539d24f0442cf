package stockhist

import (
	"fmt"
	"strings"
)

// Ticker identifies one of the supported instruments.
//
// The set is closed: histories can only be requested for the tickers listed here.
type Ticker int

const (
	AAPL Ticker = iota + 1
	AMZN
	GOOG
	IBM
	INTC
	MSFT
	NVDA
	ORCL
)

var tickerNames = map[Ticker]string{
	AAPL: "AAPL",
	AMZN: "AMZN",
	GOOG: "GOOG",
	IBM:  "IBM",
	INTC: "INTC",
	MSFT: "MSFT",
	NVDA: "NVDA",
	ORCL: "ORCL",
}

// Tickers returns every supported ticker in alphabetical order.
func Tickers() []Ticker {
	return []Ticker{AAPL, AMZN, GOOG, IBM, INTC, MSFT, NVDA, ORCL}
}

func (t Ticker) String() string {
	if name, ok := tickerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Ticker(%d)", int(t))
}

// Valid reports whether t is one of the supported tickers.
func (t Ticker) Valid() bool {
	_, ok := tickerNames[t]
	return ok
}

// ParseTicker returns the Ticker named s, case insensitive.
func ParseTicker(s string) (Ticker, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range tickerNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a supported ticker", ErrUnknownSymbol, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Ticker) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSymbol, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Ticker) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTicker(string(text))
	return err
}
