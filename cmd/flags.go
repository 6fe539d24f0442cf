package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/date"
)

var errUsage = errors.New("usage error")

// parseTicker parses a mandatory ticker flag.
func parseTicker(s string) (stockhist.Ticker, error) {
	if s == "" {
		return 0, fmt.Errorf("-t is required: %w", errUsage)
	}
	t, err := stockhist.ParseTicker(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", err, errUsage)
	}
	return t, nil
}

// parseDay parses a day flag, an empty one is today.
func parseDay(name, s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	on, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("-%s: %w: %w", name, err, errUsage)
	}
	return on, nil
}

// rangeFlags are the -from and -to flags of commands working on a range of days.
type rangeFlags struct {
	from, to string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "First day of the range (YYYY-MM-DD)")
	f.StringVar(&r.to, "to", "", "Last day of the range (YYYY-MM-DD), defaults to today")
}

func (r *rangeFlags) parse() (date.Range, error) {
	if r.from == "" {
		return date.Range{}, fmt.Errorf("-from is required: %w", errUsage)
	}
	from, err := parseDay("from", r.from)
	if err != nil {
		return date.Range{}, err
	}
	to, err := parseDay("to", r.to)
	if err != nil {
		return date.Range{}, err
	}
	return date.Range{From: from, To: to}, nil
}

// holdingsFlag is a list of TICKER=QUANTITY holdings, separated by commas.
//
// The flag can be repeated, quantities of the same ticker add up.
type holdingsFlag []stockhist.Holding

func (h *holdingsFlag) String() string {
	if h == nil {
		return ""
	}
	parts := make([]string, 0, len(*h))
	for _, x := range *h {
		parts = append(parts, fmt.Sprintf("%v=%d", x.Ticker, x.Quantity))
	}
	return strings.Join(parts, ",")
}

func (h *holdingsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		symbol, qty, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("invalid holding %q want TICKER=QUANTITY", part)
		}
		t, err := stockhist.ParseTicker(strings.TrimSpace(symbol))
		if err != nil {
			return err
		}
		q, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return fmt.Errorf("invalid quantity in %q: %w", part, err)
		}
		*h = append(*h, stockhist.Holding{Ticker: t, Quantity: q})
	}
	return nil
}

var _ flag.Value = (*holdingsFlag)(nil)
