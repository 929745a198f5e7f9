package quotedoc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats a dollar amount rounded to cents with comma thousands
// separators, e.g. "$12,500.00" or "-$3.10".
func Money(amount float64) string {
	s := decimal.NewFromFloat(amount).Round(2).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/3 + 5)
	if neg && strings.Trim(whole+cents, "0") != "" {
		b.WriteString("-")
	}
	b.WriteString("$")

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// half splits a total into a deposit rounded to cents and the remaining
// balance, so the two always sum to the rounded total.
func half(total float64) (deposit, balance float64) {
	t := decimal.NewFromFloat(total).Round(2)
	d := t.Div(decimal.NewFromInt(2)).Round(2)
	deposit, _ = d.Float64()
	balance, _ = t.Sub(d).Float64()
	return deposit, balance
}
