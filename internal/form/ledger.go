package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/my-site/internal/db"
)

type Cash struct {
	Ntd  string `form:"ntd" json:"ntd" validate:"required,integer"`
	Usd  string `form:"usd" json:"usd" validate:"omitempty,money"`
	Note string `form:"note" json:"note" validate:"required,max=50"`
	Date string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
}

// Validate returns a cash row without an id. An empty usd is zero.
func (f *Cash) Validate() (db.Cash, Errors) {
	f.Ntd = strings.TrimSpace(f.Ntd)
	f.Usd = strings.TrimSpace(f.Usd)
	f.Note = strings.TrimSpace(f.Note)
	f.Date = strings.TrimSpace(f.Date)

	if errs := check(f); !errs.Valid() {
		return db.Cash{}, errs
	}

	return db.Cash{
		Ntd:  parseInt(f.Ntd),
		Usd:  parseMoney(f.Usd),
		Note: f.Note,
		Date: parseDate(f.Date),
	}, Errors{}
}

// NewCash fills the form from a stored row.
func NewCash(c *db.Cash) Cash {
	return Cash{
		Ntd:  strconv.Itoa(c.Ntd),
		Usd:  c.Usd.StringFixed(moneyDecimals),
		Note: c.Note,
		Date: c.Date.Format(DateLayout),
	}
}

type Stock struct {
	StockSymbol   string `form:"stock_symbol" json:"stockSymbol" validate:"required,max=50"`
	StockCount    string `form:"stock_count" json:"stockCount" validate:"required,integer"`
	StockPrice    string `form:"stock_price" json:"stockPrice" validate:"required,money"`
	ProcessingFee string `form:"processing_fee" json:"processingFee" validate:"omitempty,money"`
	Tax           string `form:"tax" json:"tax" validate:"omitempty,money"`
	Date          string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
}

// Validate returns a stock row without an id. Empty fee and tax are zero.
func (f *Stock) Validate() (db.Stock, Errors) {
	f.StockSymbol = strings.TrimSpace(f.StockSymbol)
	f.StockCount = strings.TrimSpace(f.StockCount)
	f.StockPrice = strings.TrimSpace(f.StockPrice)
	f.ProcessingFee = strings.TrimSpace(f.ProcessingFee)
	f.Tax = strings.TrimSpace(f.Tax)
	f.Date = strings.TrimSpace(f.Date)

	if errs := check(f); !errs.Valid() {
		return db.Stock{}, errs
	}

	return db.Stock{
		StockSymbol:   f.StockSymbol,
		StockCount:    parseInt(f.StockCount),
		StockPrice:    parseMoney(f.StockPrice),
		ProcessingFee: parseMoney(f.ProcessingFee),
		Tax:           parseMoney(f.Tax),
		Date:          parseDate(f.Date),
	}, Errors{}
}

// NewStock fills the form from a stored row.
func NewStock(s *db.Stock) Stock {
	return Stock{
		StockSymbol:   s.StockSymbol,
		StockCount:    strconv.Itoa(s.StockCount),
		StockPrice:    s.StockPrice.StringFixed(moneyDecimals),
		ProcessingFee: s.ProcessingFee.StringFixed(moneyDecimals),
		Tax:           s.Tax.StringFixed(moneyDecimals),
		Date:          s.Date.Format(DateLayout),
	}
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}
