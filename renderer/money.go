package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency prices are quoted in.
const Currency = money.USD

// Money formats an amount of Currency, e.g. $1,234.56.
func Money(amount float64) string {
	cur := money.GetCurrency(Currency)
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), Currency).Display()
}
