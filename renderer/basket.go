package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/date"
)

//go:embed templates/*.md
var templates embed.FS

// BasketLine is the valuation of one holding.
type BasketLine struct {
	Ticker   stockhist.Ticker
	Quantity int
	Close    float64
	Value    float64
}

// Basket is the valuation of a basket on a day.
type Basket struct {
	Date  date.Date
	Lines []BasketLine
	Total float64
}

// NewBasket values every holding on that day.
//
// It fails if any price is missing, like stockhist.Basket.Value does.
func NewBasket(m *stockhist.Model, on date.Date) (*Basket, error) {
	total, err := m.TotalBasketPrice(on)
	if err != nil {
		return nil, err
	}
	b := &Basket{Date: on, Total: total}
	for _, h := range m.Holdings() {
		p, err := m.PriceOfDay(h.Ticker, on)
		if err != nil {
			return nil, err
		}
		b.Lines = append(b.Lines, BasketLine{
			Ticker:   h.Ticker,
			Quantity: h.Quantity,
			Close:    p,
			Value:    p * float64(h.Quantity),
		})
	}
	return b, nil
}

// BasketMarkdown renders the basket valuation to markdown.
func BasketMarkdown(b *Basket) string {
	funcs := template.FuncMap{"money": Money}
	tmpl, err := template.New("basket.md").Funcs(funcs).ParseFS(templates, "templates/basket.md")
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", "basket.md", err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, b); err != nil {
		return fmt.Sprintf("error executing template %q: %v", "basket.md", err)
	}
	return sb.String()
}
