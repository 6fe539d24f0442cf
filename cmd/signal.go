package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type signalCmd struct {
	ticker string
	date   string
}

func (*signalCmd) Name() string     { return "signal" }
func (*signalCmd) Synopsis() string { return "tell whether a day is a buying opportunity" }
func (*signalCmd) Usage() string {
	return `stockhist signal -t <ticker> [-d <date>]

  A day is a buying opportunity when the 50 day moving average of the stock is above
  its 200 day moving average.
`
}

func (c *signalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. MSFT)")
	f.StringVar(&c.date, "d", "", "Day to check (defaults to today)")
}

func (c *signalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *signalCmd) run(ctx context.Context, w io.Writer) error {
	t, err := parseTicker(c.ticker)
	if err != nil {
		return err
	}
	on, err := parseDay("d", c.date)
	if err != nil {
		return err
	}
	m, err := NewModel(ctx, nil, t)
	if err != nil {
		return err
	}
	buy, err := m.SignalForDay(t, on)
	if err != nil {
		return err
	}
	if buy {
		fmt.Fprintf(w, "%s is a buying opportunity for %v\n", on, t)
	} else {
		fmt.Fprintf(w, "%s is not a buying opportunity for %v\n", on, t)
	}
	return nil
}
