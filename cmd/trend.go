package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type trendCmd struct {
	rangeFlags
	ticker string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "tell whether a stock is trending up over a range of days" }
func (*trendCmd) Usage() string {
	return `stockhist trend -t <ticker> -from <date> [-to <date>]

  A stock is trending up when its price on the last day is not below its price on the
  first day. Both days must be trading days.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. MSFT)")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *trendCmd) run(ctx context.Context, w io.Writer) error {
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
	up, err := m.StockTrendUp(t, r.From, r.To)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v is trending %s from %s to %s\n", t, direction(up), r.From, r.To)
	return nil
}

func direction(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
