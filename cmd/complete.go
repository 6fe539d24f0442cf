package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/docs"
)

// Completion returns the shell completion of the stockhist command line.
func Completion() *complete.Command {
	tickers := make(predict.Set, 0, len(stockhist.Tickers()))
	for _, t := range stockhist.Tickers() {
		tickers = append(tickers, t.String())
	}

	root := &complete.Command{
		Sub: make(map[string]*complete.Command, len(Commands)),
		Flags: map[string]complete.Predictor{
			"data-dir":   predict.Dirs("*"),
			"log-level":  predict.Set{"debug", "info", "warn", "error"},
			"rate-limit": predict.Something,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "t":
				sub.Flags[f.Name] = tickers
			case "o":
				sub.Flags[f.Name] = predict.Files("*")
			case "html":
				sub.Flags[f.Name] = predict.Nothing
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		root.Sub[c.Name()] = sub
	}
	root.Sub["topic"].Args = predict.Set(append(docs.All(), "*"))
	return root
}
