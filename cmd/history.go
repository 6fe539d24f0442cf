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

type historyCmd struct {
	rangeFlags
	ticker string
	html   bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the closing prices of a stock over a range of days" }
func (*historyCmd) Usage() string {
	return `stockhist history -t <ticker> -from <date> [-to <date>] [-html]

  Displays the closing prices of a stock, day by day, flagging the buying opportunities,
  and the lowest and highest prices of the range.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. MSFT)")
	f.BoolVar(&c.html, "html", false, "Print an html document instead")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *historyCmd) run(ctx context.Context, w io.Writer) error {
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
	h := &renderer.History{
		Ticker:        t,
		Range:         r,
		Prices:        prices,
		Opportunities: opportunities,
	}
	// Extremes are missing when the range bounds are not trading days.
	if x, err := m.RangeExtremes(t, r.From, r.To); err == nil && len(prices) > 0 {
		h.Extremes = &x
	}

	md := renderer.HistoryMarkdown(h)
	if !c.html {
		printMarkdown(w, md)
		return nil
	}
	html, err := renderer.HTML(md)
	if err != nil {
		return err
	}
	fmt.Fprint(w, html)
	return nil
}
