package ledger

import (
	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/shopspring/decimal"
)

const (
	returnPlaces = 2
	cashPlaces   = 3
)

var hundred = decimal.NewFromInt(100)

// Holding is one stock row valued at the live price.
type Holding struct {
	StockID         int             `json:"stockId"`
	StockSymbol     string          `json:"stockSymbol"`
	StockCount      int             `json:"stockCount"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	AverageCost     decimal.Decimal `json:"averageCost"`
	RateOfReturn    decimal.Decimal `json:"rateOfReturn"`
	StockPercentage decimal.Decimal `json:"stockPercentage"`
}

// Valuation is the priced snapshot of the whole ledger.
type Valuation struct {
	Holdings        []Holding       `json:"holdings"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	NtdTotal        int             `json:"ntdTotal"`
	UsdTotal        decimal.Decimal `json:"usdTotal"`
	TotalCash       decimal.Decimal `json:"totalCash"`
	TotalStockValue decimal.Decimal `json:"totalStockValue"`
}

// Valuate prices every stock row and the cash total. Symbols missing from
// prices are valued at zero.
//
// The return of a row compares its recorded cost basis (price*count) with the
// total cost including fee and tax; the live price only drives the current
// value, the total and the allocation percentage.
func Valuate(stocks []db.Stock, cash db.CashTotal, rate decimal.Decimal, prices map[string]decimal.Decimal) Valuation {
	v := Valuation{
		Holdings:        make([]Holding, 0, len(stocks)),
		ExchangeRate:    rate,
		NtdTotal:        cash.Ntd,
		UsdTotal:        cash.Usd,
		TotalStockValue: decimal.Zero,
	}

	for _, s := range stocks {
		count := decimal.NewFromInt(int64(s.StockCount))
		costBasis := s.StockPrice.Mul(count)
		totalCost := costBasis.Add(s.ProcessingFee).Add(s.Tax)

		averageCost := decimal.Zero
		if s.StockCount > 0 {
			averageCost = totalCost.Div(count)
		}

		rateOfReturn := decimal.Zero
		if totalCost.IsPositive() {
			rateOfReturn = costBasis.Sub(totalCost).Div(totalCost).Mul(hundred)
		}

		price, ok := prices[s.StockSymbol]
		if !ok {
			price = decimal.Zero
		}
		currentValue := price.Mul(count)

		v.Holdings = append(v.Holdings, Holding{
			StockID:         s.ID,
			StockSymbol:     s.StockSymbol,
			StockCount:      s.StockCount,
			CurrentPrice:    price,
			CurrentValue:    currentValue,
			TotalCost:       totalCost,
			AverageCost:     averageCost.RoundBank(returnPlaces),
			RateOfReturn:    rateOfReturn.RoundBank(returnPlaces),
			StockPercentage: decimal.Zero,
		})
		v.TotalStockValue = v.TotalStockValue.Add(currentValue)
	}

	if v.TotalStockValue.IsPositive() {
		for i := range v.Holdings {
			v.Holdings[i].StockPercentage = v.Holdings[i].CurrentValue.
				Div(v.TotalStockValue).
				Mul(hundred).
				RoundBank(returnPlaces)
		}
	}

	v.TotalCash = TotalCash(rate, cash)

	return v
}

// TotalCash converts the usd total at rate and adds the ntd total.
func TotalCash(rate decimal.Decimal, cash db.CashTotal) decimal.Decimal {
	return rate.Mul(cash.Usd).
		Add(decimal.NewFromInt(int64(cash.Ntd))).
		RoundBank(cashPlaces)
}

// Symbols returns the distinct symbols of stocks in first-seen order.
func Symbols(stocks []db.Stock) []string {
	seen := make(map[string]struct{}, len(stocks))
	symbols := make([]string, 0, len(stocks))
	for _, s := range stocks {
		if _, ok := seen[s.StockSymbol]; ok {
			continue
		}
		seen[s.StockSymbol] = struct{}{}
		symbols = append(symbols, s.StockSymbol)
	}

	return symbols
}
