// Package quotes fetches the USD→TWD exchange rate and TWSE closing prices.
//
// Every failure is logged and reported as decimal.Zero: callers treat zero as
// "unavailable". Nothing is cached or retried.
package quotes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

const (
	DefaultExchangeRateURL = "https://tw.rter.info/capi.php"
	DefaultStockDayURL     = "https://www.twse.com.tw/exchangeReport/STOCK_DAY"
	DefaultTimeout         = 5 * time.Second

	exchangeRatePath = "$.USDTWD.Exrate"
	closingPricePath = "$.data[-1:][6]"
	ratePlaces       = 3
)

type Config struct {
	ExchangeRateURL string
	StockDayURL     string
	Timeout         time.Duration
}

type Client struct {
	cfg    Config
	http   *resty.Client
	logger *slog.Logger
}

// New returns a client; empty config fields fall back to the public endpoints.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.ExchangeRateURL == "" {
		cfg.ExchangeRateURL = DefaultExchangeRateURL
	}
	if cfg.StockDayURL == "" {
		cfg.StockDayURL = DefaultStockDayURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		cfg:    cfg,
		http:   resty.New().SetTimeout(cfg.Timeout),
		logger: logger,
	}
}

// ExchangeRate returns the current USD→TWD rate rounded to 3 places.
func (c *Client) ExchangeRate(ctx context.Context) decimal.Decimal {
	rate, err := c.fetch(ctx, c.cfg.ExchangeRateURL, nil, exchangeRatePath)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch usd to twd rate", "error", err)
		return decimal.Zero
	}

	return rate.RoundBank(ratePlaces)
}

// CurrentPrice returns the closing price of the most recent trading day of
// the month for the symbol.
func (c *Client) CurrentPrice(ctx context.Context, symbol string) decimal.Decimal {
	params := map[string]string{
		"response": "json",
		"stockNo":  symbol,
	}

	price, err := c.fetch(ctx, c.cfg.StockDayURL, params, closingPricePath)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch current price", "symbol", symbol, "error", err)
		return decimal.Zero
	}

	return price
}

func (c *Client) fetch(ctx context.Context, url string, params map[string]string, path string) (decimal.Decimal, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request %s: %w", url, err)
	}

	if !resp.IsSuccess() {
		return decimal.Zero, fmt.Errorf("request %s: unexpected status %s", url, resp.Status())
	}

	var body any
	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decode body: %w", err)
	}

	return extract(body, path)
}

// extract reads a single number from body. A path that selects a list keeps
// its first element.
func extract(body any, path string) (decimal.Decimal, error) {
	val, err := jsonpath.Get(path, body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read %q: %w", path, err)
	}

	if list, ok := val.([]any); ok {
		if len(list) == 0 {
			return decimal.Zero, fmt.Errorf("read %q: no data", path)
		}
		val = list[0]
	}

	var raw string
	switch v := val.(type) {
	case string:
		raw = v
	case float64:
		return decimal.NewFromFloat(v), nil
	case fmt.Stringer:
		raw = v.String()
	default:
		return decimal.Zero, fmt.Errorf("read %q: unexpected value %v", path, val)
	}

	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read %q: %w", path, err)
	}

	return d, nil
}
