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

type extremesCmd struct {
	rangeFlags
	ticker string
}

func (*extremesCmd) Name() string     { return "extremes" }
func (*extremesCmd) Synopsis() string { return "display the lowest and highest prices over a range of days" }
func (*extremesCmd) Usage() string {
	return `stockhist extremes -t <ticker> -from <date> [-to <date>]

  Displays the lowest and highest closing prices of a stock over a range of days.
`
}

func (c *extremesCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. MSFT)")
}

func (c *extremesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *extremesCmd) run(ctx context.Context, w io.Writer) error {
	t, err := parseTicker(c.ticker)
	if err != nil {
		return err
	}
	r, err := c.parse()
	if err != nil {
		return err
	}
	m, err := NewModel(ctx, nil, t)
	if err != nil {
		return err
	}
	x, err := m.RangeExtremes(t, r.From, r.To)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v from %s to %s: lowest %s, highest %s\n", t, r.From, r.To, renderer.Money(x.Min), renderer.Money(x.Max))
	return nil
}
