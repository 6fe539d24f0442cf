// Package cmd implements the CLI application to query stock histories and a basket.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/alphavantage"
)

const (
	EnvAPIKey    = "ALPHAVANTAGE_API_KEY"
	EnvDataDir   = "STOCKHIST_DATA_DIR"
	EnvLogLevel  = "STOCKHIST_LOG_LEVEL"
	EnvRateLimit = "STOCKHIST_RATE_LIMIT"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Directory of <TICKER>.csv files to read histories from, instead of Alpha Vantage")
var logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
var rateLimit = flag.Int("rate-limit", alphavantage.DefaultRateLimit, "Maximum Alpha Vantage requests per minute, 0 for no limit")

// envFlags maps global flags to the environment variable that sets them.
var envFlags = map[string]string{
	"data-dir":   EnvDataDir,
	"log-level":  EnvLogLevel,
	"rate-limit": EnvRateLimit,
}

// Commands are the stockhist subcommands.
var Commands = []subcommands.Command{
	&priceCmd{},
	&historyCmd{},
	&signalCmd{},
	&trendCmd{},
	&extremesCmd{},
	&chartCmd{},
	&basketCmd{},
	&basketTrendCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&priceCmd{}, "stocks")
	c.Register(&historyCmd{}, "stocks")
	c.Register(&signalCmd{}, "stocks")
	c.Register(&trendCmd{}, "stocks")
	c.Register(&extremesCmd{}, "stocks")
	c.Register(&chartCmd{}, "stocks")

	c.Register(&basketCmd{}, "basket")
	c.Register(&basketTrendCmd{}, "basket")

	c.Register(&topicCmd{}, "help")
}

// LoadEnv reads the .env file if any, then sets every global flag not given on the command
// line from its environment variable.
//
// It must be called after fs is parsed.
func LoadEnv(fs *flag.FlagSet) error {
	// .env is optional.
	_ = godotenv.Load()

	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	var errs []error
	for name, env := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || given[name] || fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q: %w", env, value, err))
		}
	}
	return errors.Join(errs...)
}

// NewFetcher returns the data source selected by the global flags: the data directory if
// set, Alpha Vantage otherwise.
func NewFetcher() (stockhist.Fetcher, error) {
	if *dataDir != "" {
		return alphavantage.Dir(*dataDir), nil
	}
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return nil, fmt.Errorf("%s is not set, and there is no -data-dir", EnvAPIKey)
	}
	log, err := NewLogger(*logLevel)
	if err != nil {
		return nil, err
	}
	return alphavantage.New(key,
		alphavantage.WithRateLimit(*rateLimit),
		alphavantage.WithLogger(log),
	), nil
}

// NewModel returns a model with the histories of tickers registered, and the holdings in
// its basket.
func NewModel(ctx context.Context, holdings []stockhist.Holding, tickers ...stockhist.Ticker) (*stockhist.Model, error) {
	log, err := NewLogger(*logLevel)
	if err != nil {
		return nil, err
	}
	fetcher, err := NewFetcher()
	if err != nil {
		return nil, err
	}
	m := stockhist.NewModel(fetcher, stockhist.WithLogger(log))
	for _, h := range holdings {
		m.AddHolding(h.Ticker, h.Quantity)
	}
	if err := m.RegisterAll(ctx, uniqueTickers(holdings, tickers...)...); err != nil {
		return nil, fmt.Errorf("cannot register histories: %w", err)
	}
	return m, nil
}

// uniqueTickers returns the tickers of holdings and tickers, sorted, each one once.
func uniqueTickers(holdings []stockhist.Holding, tickers ...stockhist.Ticker) []stockhist.Ticker {
	all := slices.Clone(tickers)
	for _, h := range holdings {
		all = append(all, h.Ticker)
	}
	slices.Sort(all)
	return slices.Compact(all)
}

// run adapts a command body to the subcommands exit status.
func run(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
