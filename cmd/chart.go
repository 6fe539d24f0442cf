package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stockhist/chart"
)

type chartCmd struct {
	rangeFlags
	ticker string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the closing prices of a stock over a range of days" }
func (*chartCmd) Usage() string {
	return `stockhist chart -t <ticker> -from <date> [-to <date>] -o <file.png|file.svg>

  Draws the closing prices of a stock, with its buying opportunities, to an image file.
  The format is chosen from the file extension.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. MSFT)")
	f.StringVar(&c.output, "o", "", "Image file to write (.png or .svg)")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *chartCmd) run(ctx context.Context, w io.Writer) error {
	if c.output == "" {
		return fmt.Errorf("-o is required: %w", errUsage)
	}
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

	prices, err := m.HistoryInRange(t, r.From, r.To)
	if err != nil {
		return err
	}
	opportunities, err := m.SignalsInRange(t, r.From, r.To)
	if err != nil {
		return err
	}
	s := &chart.Series{Ticker: t, Prices: prices, Opportunities: opportunities}
	if x, err := m.RangeExtremes(t, r.From, r.To); err == nil {
		s.Extremes = x
	}

	f, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("cannot create chart file: %w", err)
	}
	defer f.Close()
	if err := chart.Render(f, s, chart.FormatOf(c.output)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write chart file: %w", err)
	}
	fmt.Fprintf(w, "chart of %v written to %s\n", t, c.output)
	return nil
}
