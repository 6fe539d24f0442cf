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

type basketCmd struct {
	holdings holdingsFlag
	date     string
	html     bool
}

func (*basketCmd) Name() string     { return "basket" }
func (*basketCmd) Synopsis() string { return "display the value of a basket of stocks on a day" }
func (*basketCmd) Usage() string {
	return `stockhist basket -h <ticker>=<quantity>,... [-d <date>] [-html]

  Displays the value of each holding of the basket, and the basket total, on a day.
  Every stock of the basket must have a price on that day.
`
}

func (c *basketCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.holdings, "h", "Holdings as TICKER=QUANTITY, comma separated (e.g. MSFT=10,IBM=5)")
	f.StringVar(&c.date, "d", "", "Day of the valuation (defaults to today)")
	f.BoolVar(&c.html, "html", false, "Print an html document instead")
}

func (c *basketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *basketCmd) run(ctx context.Context, w io.Writer) error {
	if len(c.holdings) == 0 {
		return fmt.Errorf("-h is required: %w", errUsage)
	}
	on, err := parseDay("d", c.date)
	if err != nil {
		return err
	}
	m, err := NewModel(ctx, c.holdings)
	if err != nil {
		return err
	}
	b, err := renderer.NewBasket(m, on)
	if err != nil {
		return err
	}
	md := renderer.BasketMarkdown(b)
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
