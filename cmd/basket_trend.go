package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type basketTrendCmd struct {
	rangeFlags
	holdings holdingsFlag
}

func (*basketTrendCmd) Name() string { return "basket-trend" }
func (*basketTrendCmd) Synopsis() string {
	return "tell whether a basket of stocks is trending up over a range of days"
}
func (*basketTrendCmd) Usage() string {
	return `stockhist basket-trend -h <ticker>=<quantity>,... -from <date> [-to <date>]

  A basket is trending up when its value on the last day is strictly above its value on
  the first day. Every stock of the basket must have a price on both days.
`
}

func (c *basketTrendCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.Var(&c.holdings, "h", "Holdings as TICKER=QUANTITY, comma separated (e.g. MSFT=10,IBM=5)")
}

func (c *basketTrendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(c.run(ctx, os.Stdout))
}

func (c *basketTrendCmd) run(ctx context.Context, w io.Writer) error {
	if len(c.holdings) == 0 {
		return fmt.Errorf("-h is required: %w", errUsage)
	}
	r, err := c.parse()
	if err != nil {
		return err
	}
	m, err := NewModel(ctx, c.holdings)
	if err != nil {
		return err
	}
	up, err := m.BasketTrendUp(r.From, r.To)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "basket is trending %s from %s to %s\n", direction(up), r.From, r.To)
	return nil
}
