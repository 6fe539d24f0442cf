package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/etnz/stockhist"
)

// offline makes the commands read histories from the test data directory.
func offline(t *testing.T) {
	t.Helper()
	previous := *dataDir
	*dataDir = filepath.Join("..", "alphavantage", "testdata")
	t.Cleanup(func() { *dataDir = previous })
}

func TestHoldingsFlag(t *testing.T) {
	var h holdingsFlag
	if err := h.Set("MSFT=2, ibm=1"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := h.Set("MSFT=3"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	want := holdingsFlag{
		{Ticker: stockhist.MSFT, Quantity: 2},
		{Ticker: stockhist.IBM, Quantity: 1},
		{Ticker: stockhist.MSFT, Quantity: 3},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("holdings mismatch (-want +got):\n%s", diff)
	}
	if got, want := h.String(), "MSFT=2,IBM=1,MSFT=3"; got != want {
		t.Errorf("String() = %q want %q", got, want)
	}
}

func TestUniqueTickers(t *testing.T) {
	holdings := []stockhist.Holding{
		{Ticker: stockhist.MSFT, Quantity: 1},
		{Ticker: stockhist.IBM, Quantity: 2},
		{Ticker: stockhist.MSFT, Quantity: 2},
	}
	got := uniqueTickers(holdings, stockhist.IBM, stockhist.AAPL)
	want := []stockhist.Ticker{stockhist.AAPL, stockhist.IBM, stockhist.MSFT}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("uniqueTickers() mismatch (-want +got):\n%s", diff)
	}
}

func TestHoldingsFlagErrors(t *testing.T) {
	for _, value := range []string{"MSFT", "XYZ=1", "MSFT=two"} {
		var h holdingsFlag
		if err := h.Set(value); err == nil {
			t.Errorf("Set(%q) succeeded", value)
		}
	}
}

func TestParseTicker(t *testing.T) {
	if _, err := parseTicker(""); !errors.Is(err, errUsage) {
		t.Errorf("parseTicker(\"\") error = %v want %v", err, errUsage)
	}
	_, err := parseTicker("XYZ")
	if !errors.Is(err, errUsage) || !errors.Is(err, stockhist.ErrUnknownSymbol) {
		t.Errorf("parseTicker(XYZ) error = %v want %v and %v", err, errUsage, stockhist.ErrUnknownSymbol)
	}
	got, err := parseTicker("msft")
	if err != nil || got != stockhist.MSFT {
		t.Errorf("parseTicker(msft) = %v, %v want %v", got, err, stockhist.MSFT)
	}
}

func TestRangeFlags(t *testing.T) {
	r := rangeFlags{to: "2018-07-09"}
	if _, err := r.parse(); !errors.Is(err, errUsage) {
		t.Errorf("parse() without -from error = %v want %v", err, errUsage)
	}
	r.from = "2018-7-3"
	got, err := r.parse()
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if got.From.String() != "2018-07-03" || got.To.String() != "2018-07-09" {
		t.Errorf("parse() = %v want 2018-07-03_2018-07-09", got)
	}
}

func TestCommands(t *testing.T) {
	offline(t)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(context.Context, *bytes.Buffer) error
		want string
	}{
		{
			name: "price",
			run:  func(ctx context.Context, w *bytes.Buffer) error { return (&priceCmd{ticker: "MSFT", date: "2018-07-03"}).run(ctx, w) },
			want: "MSFT closed at $99.05 on 2018-07-03\n",
		},
		{
			name: "signal",
			run:  func(ctx context.Context, w *bytes.Buffer) error { return (&signalCmd{ticker: "MSFT", date: "2018-07-09"}).run(ctx, w) },
			want: "2018-07-09 is not a buying opportunity for MSFT\n",
		},
		{
			name: "trend",
			run: func(ctx context.Context, w *bytes.Buffer) error {
				c := &trendCmd{rangeFlags: rangeFlags{from: "2018-07-03", to: "2018-07-09"}, ticker: "MSFT"}
				return c.run(ctx, w)
			},
			want: "MSFT is trending up from 2018-07-03 to 2018-07-09\n",
		},
		{
			name: "extremes",
			run: func(ctx context.Context, w *bytes.Buffer) error {
				c := &extremesCmd{rangeFlags: rangeFlags{from: "2018-07-02", to: "2018-07-09"}, ticker: "MSFT"}
				return c.run(ctx, w)
			},
			want: "MSFT from 2018-07-02 to 2018-07-09: lowest $99.05, highest $101.85\n",
		},
		{
			name: "basket-trend",
			run: func(ctx context.Context, w *bytes.Buffer) error {
				c := &basketTrendCmd{
					rangeFlags: rangeFlags{from: "2018-07-03", to: "2018-07-09"},
					holdings:   holdingsFlag{{Ticker: stockhist.MSFT, Quantity: 2}, {Ticker: stockhist.IBM, Quantity: 1}},
				}
				return c.run(ctx, w)
			},
			want: "basket is trending up from 2018-07-03 to 2018-07-09\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := test.run(ctx, &buf); err != nil {
				t.Fatalf("run() error: %v", err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("run() = %q want %q", got, test.want)
			}
		})
	}
}

func TestPriceMissingDay(t *testing.T) {
	offline(t)
	var buf bytes.Buffer
	err := (&priceCmd{ticker: "MSFT", date: "2018-07-04"}).run(context.Background(), &buf)
	if !errors.Is(err, stockhist.ErrNotFound) {
		t.Errorf("run() error = %v want %v", err, stockhist.ErrNotFound)
	}
}

func TestHistoryHTML(t *testing.T) {
	offline(t)
	var buf bytes.Buffer
	c := &historyCmd{rangeFlags: rangeFlags{from: "2018-07-02", to: "2018-07-09"}, ticker: "MSFT", html: true}
	if err := c.run(context.Background(), &buf); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"<h1>History for MSFT</h1>", "<table>", "2018-07-05", "$99.76"} {
		if !strings.Contains(got, want) {
			t.Errorf("history html does not contain %q:\n%s", want, got)
		}
	}
}

func TestBasketHTML(t *testing.T) {
	offline(t)
	var buf bytes.Buffer
	c := &basketCmd{
		holdings: holdingsFlag{{Ticker: stockhist.MSFT, Quantity: 2}, {Ticker: stockhist.IBM, Quantity: 1}},
		date:     "2018-07-03",
		html:     true,
	}
	if err := c.run(context.Background(), &buf); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "$337.67") {
		t.Errorf("basket html does not contain the total $337.67:\n%s", got)
	}
}

func TestBasketRequiresHoldings(t *testing.T) {
	offline(t)
	err := (&basketCmd{date: "2018-07-03"}).run(context.Background(), new(bytes.Buffer))
	if !errors.Is(err, errUsage) {
		t.Errorf("run() error = %v want %v", err, errUsage)
	}
}

func TestChart(t *testing.T) {
	offline(t)
	output := filepath.Join(t.TempDir(), "msft.svg")
	c := &chartCmd{rangeFlags: rangeFlags{from: "2018-07-02", to: "2018-07-09"}, ticker: "MSFT", output: output}
	if err := c.run(context.Background(), new(bytes.Buffer)); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if !strings.Contains(string(content), "<svg") {
		t.Errorf("chart file is not an svg")
	}
}

func TestNewFetcherWithoutKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	previous := *dataDir
	*dataDir = ""
	t.Cleanup(func() { *dataDir = previous })

	if _, err := NewFetcher(); err == nil {
		t.Errorf("NewFetcher() without %s succeeded", EnvAPIKey)
	}
}

func TestLoadEnv(t *testing.T) {
	fs := flag.NewFlagSet("stockhist", flag.ContinueOnError)
	dir := fs.String("data-dir", "", "")
	limit := fs.Int("rate-limit", 5, "")
	level := fs.String("log-level", "warn", "")
	if err := fs.Parse([]string{"-rate-limit", "3"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDataDir, "data")
	t.Setenv(EnvRateLimit, "9")

	if err := LoadEnv(fs); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if *dir != "data" {
		t.Errorf("data-dir = %q want %q", *dir, "data")
	}
	if *limit != 3 {
		t.Errorf("rate-limit = %d want 3, the command line wins", *limit)
	}
	if *level != "warn" {
		t.Errorf("log-level = %q want %q", *level, "warn")
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	fs := flag.NewFlagSet("stockhist", flag.ContinueOnError)
	fs.Int("rate-limit", 5, "")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvRateLimit, "fast")
	if err := LoadEnv(fs); err == nil {
		t.Errorf("LoadEnv() with %s=fast succeeded", EnvRateLimit)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		sub, ok := c.Sub[cmd.Name()]
		if !ok {
			t.Errorf("no completion for %q", cmd.Name())
			continue
		}
		if len(sub.Flags) == 0 && cmd.Name() != "topic" {
			t.Errorf("no flag completion for %q", cmd.Name())
		}
	}
	if _, ok := c.Sub["price"].Flags["t"]; !ok {
		t.Errorf("no completion for price -t")
	}
}

func TestTopic(t *testing.T) {
	var buf bytes.Buffer
	if err := (&topicCmd{}).run(&buf, "basket"); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(buf.String(), "Basket") {
		t.Errorf("topic basket does not contain its title:\n%s", buf.String())
	}
	if err := (&topicCmd{}).run(new(bytes.Buffer), "nope"); err == nil {
		t.Errorf("topic nope succeeded")
	}
}
