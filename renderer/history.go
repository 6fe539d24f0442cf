package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/date"
)

// NoPrices is displayed instead of an empty history.
const NoPrices = "No prices are contained within this day range"

// History is the price history of an instrument over a range of days.
type History struct {
	Ticker        stockhist.Ticker
	Range         date.Range
	Prices        []stockhist.Price
	Opportunities []date.Date // buying opportunities, a subset of Prices days.
	Extremes      *stockhist.Extremes
}

// HistoryMarkdown renders the history as a markdown table, buying opportunities are
// flagged.
func HistoryMarkdown(h *History) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", h.Ticker))
	doc.PlainText(fmt.Sprintf("From %s to %s.", h.Range.From, h.Range.To))

	if len(h.Prices) == 0 {
		doc.PlainText(NoPrices)
		return doc.String()
	}

	buy := make(map[date.Date]bool, len(h.Opportunities))
	for _, on := range h.Opportunities {
		buy[on] = true
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignCenter,
		},
		Header: []string{"Date", "Close", "Buy"},
		Rows:   [][]string{},
	}
	for _, p := range h.Prices {
		flag := ""
		if buy[p.Date] {
			flag = "✓"
		}
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			Money(p.Close),
			flag,
		})
	}
	doc.Table(table)

	if h.Extremes != nil {
		doc.PlainText(fmt.Sprintf("Lowest %s, highest %s.", Money(h.Extremes.Min), Money(h.Extremes.Max)))
	}
	return doc.String()
}
