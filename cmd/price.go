package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stockhist/renderer"
)

type priceCmd struct {
	ticker string
	date   string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the closing price of a stock on a day" }
func (*priceCmd) Usage() string {
	return `stockhist price -t <ticker> [-d <date>]

  Displays the closing price of a stock on a trading day.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. MSFT)")
	f.StringVar(&c.date, "d", "", "Day of the price (defaults to today)")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *priceCmd) run(ctx context.Context, w io.Writer) error {
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
	price, err := m.PriceOfDay(t, on)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v closed at %s on %s\n", t, renderer.Money(price), on)
	return nil
}
