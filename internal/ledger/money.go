package ledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	TWD = money.TWD
	USD = money.USD
)

// Display formats amount in the currency, e.g. "NT$1,321.23".
// Digits beyond the currency fraction are truncated.
func Display(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.String()
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(amount.Mul(factor).IntPart(), code).Display()
}
