package alphavantage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/date"
)

// Dir reads histories from csv files named after their ticker (e.g. MSFT.csv) in a
// directory, in the same format as the API.
//
// Files are only read: Dir is a data source for offline use, not a cache.
type Dir string

var _ stockhist.Fetcher = Dir("")

// FetchDailyCloses reads the closes of t from the directory.
func (d Dir) FetchDailyCloses(ctx context.Context, t stockhist.Ticker) (map[date.Date]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file := filepath.Join(string(d), t.String()+".csv")
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	closes, err := ParseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", file, err)
	}
	return closes, nil
}
