// Package ledger keeps the cash and stock records and values the portfolio.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/shopspring/decimal"
)

type Repository interface {
	CashTotal(ctx context.Context) (db.CashTotal, error)
	Cashes(ctx context.Context) ([]db.Cash, error)
	CashByID(ctx context.Context, cashID int) (*db.Cash, error)
	CreateCash(ctx context.Context, cash *db.Cash) error
	UpdateCash(ctx context.Context, cash *db.Cash) error
	DeleteCash(ctx context.Context, cashID int) (int, error)

	Stocks(ctx context.Context) ([]db.Stock, error)
	StockBySymbol(ctx context.Context, symbol string) (*db.Stock, error)
	CreateStock(ctx context.Context, stock *db.Stock) error
	UpdateStock(ctx context.Context, stock *db.Stock) error
	DeleteStocksBySymbol(ctx context.Context, symbol string) (int, error)
}

// QuoteGateway returns live quotes. Zero means the quote is unavailable.
type QuoteGateway interface {
	ExchangeRate(ctx context.Context) decimal.Decimal
	CurrentPrice(ctx context.Context, symbol string) decimal.Decimal
}

// ErrCountOutOfRange is returned when a merged position no longer fits the
// stock count column.
var ErrCountOutOfRange = errors.New("stock count out of range")

// Dashboard is everything the ledger index shows.
type Dashboard struct {
	Valuation
	Cashes []db.Cash  `json:"cashes"`
	Stocks []db.Stock `json:"stocks"`
}

type Manager struct {
	db     Repository
	quotes QuoteGateway
	logger *slog.Logger
}

func NewLedgerManager(repo Repository, quotes QuoteGateway, logger *slog.Logger) *Manager {
	return &Manager{
		db:     repo,
		quotes: quotes,
		logger: logger,
	}
}

// Dashboard loads the ledger and values it. The rate is fetched once and every
// distinct symbol once, one after another.
func (m *Manager) Dashboard(ctx context.Context) (*Dashboard, error) {
	cash, err := m.db.CashTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get cash total: %w", err)
	}

	cashes, err := m.db.Cashes(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get cashes: %w", err)
	}

	stocks, err := m.db.Stocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get stocks: %w", err)
	}

	rate := m.quotes.ExchangeRate(ctx)

	prices := make(map[string]decimal.Decimal)
	for _, symbol := range Symbols(stocks) {
		prices[symbol] = m.quotes.CurrentPrice(ctx, symbol)
	}

	return &Dashboard{
		Valuation: Valuate(stocks, cash, rate, prices),
		Cashes:    cashes,
		Stocks:    stocks,
	}, nil
}

func (m *Manager) CashByID(ctx context.Context, cashID int) (*db.Cash, error) {
	cash, err := m.db.CashByID(ctx, cashID)
	if err != nil {
		return nil, fmt.Errorf("db get cash: %w", err)
	}

	return cash, nil
}

// SaveCash creates the row when cashID is zero and overwrites it otherwise.
func (m *Manager) SaveCash(ctx context.Context, cashID int, cash db.Cash) (*db.Cash, error) {
	if cashID == 0 {
		cash.ID = 0
		if err := m.db.CreateCash(ctx, &cash); err != nil {
			return nil, fmt.Errorf("db create cash: %w", err)
		}
		m.logger.InfoContext(ctx, "cash created", "cashId", cash.ID)
		return &cash, nil
	}

	cash.ID = cashID
	if err := m.db.UpdateCash(ctx, &cash); err != nil {
		return nil, fmt.Errorf("db update cash: %w", err)
	}
	m.logger.InfoContext(ctx, "cash updated", "cashId", cash.ID)

	return &cash, nil
}

func (m *Manager) DeleteCash(ctx context.Context, cashID int) error {
	n, err := m.db.DeleteCash(ctx, cashID)
	if err != nil {
		return fmt.Errorf("db delete cash: %w", err)
	}
	m.logger.InfoContext(ctx, "cash deleted", "cashId", cashID, "rows", n)

	return nil
}

func (m *Manager) StockBySymbol(ctx context.Context, symbol string) (*db.Stock, error) {
	stock, err := m.db.StockBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("db get stock: %w", err)
	}

	return stock, nil
}

// SaveStock records a purchase. When a row for the symbol exists the purchase
// is merged into it: count, fee and tax are added, price and date replaced.
// Otherwise the edited row (if any) is overwritten, or a new row is created.
//
// The lookup and the write are separate statements, so two concurrent
// purchases of the same symbol can lose one update.
func (m *Manager) SaveStock(ctx context.Context, edited *db.Stock, stock db.Stock) (*db.Stock, error) {
	existing, err := m.db.StockBySymbol(ctx, stock.StockSymbol)
	switch {
	case err == nil:
		total := int64(existing.StockCount) + int64(stock.StockCount)
		if total > math.MaxInt32 || total < math.MinInt32 {
			return nil, fmt.Errorf("merge %s: %d shares: %w", stock.StockSymbol, total, ErrCountOutOfRange)
		}
		Merge(existing, stock)
		if err := m.db.UpdateStock(ctx, existing); err != nil {
			return nil, fmt.Errorf("db update stock: %w", err)
		}
		m.logger.InfoContext(ctx, "stock merged", "stockId", existing.ID, "symbol", existing.StockSymbol)
		return existing, nil
	case !errors.Is(err, db.ErrNotFound):
		return nil, fmt.Errorf("db get stock: %w", err)
	}

	if edited != nil {
		stock.ID = edited.ID
		if err := m.db.UpdateStock(ctx, &stock); err != nil {
			return nil, fmt.Errorf("db update stock: %w", err)
		}
		m.logger.InfoContext(ctx, "stock updated", "stockId", stock.ID, "symbol", stock.StockSymbol)
		return &stock, nil
	}

	stock.ID = 0
	if err := m.db.CreateStock(ctx, &stock); err != nil {
		return nil, fmt.Errorf("db create stock: %w", err)
	}
	m.logger.InfoContext(ctx, "stock created", "stockId", stock.ID, "symbol", stock.StockSymbol)

	return &stock, nil
}

// Merge adds a purchase into an existing position row.
func Merge(dst *db.Stock, purchase db.Stock) {
	dst.StockCount += purchase.StockCount
	dst.ProcessingFee = dst.ProcessingFee.Add(purchase.ProcessingFee)
	dst.Tax = dst.Tax.Add(purchase.Tax)
	dst.StockPrice = purchase.StockPrice
	dst.Date = purchase.Date
}

// DeleteStocks removes every row of the symbol. An empty symbol deletes nothing.
func (m *Manager) DeleteStocks(ctx context.Context, symbol string) (int, error) {
	n, err := m.db.DeleteStocksBySymbol(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("db delete stocks: %w", err)
	}
	m.logger.InfoContext(ctx, "stocks deleted", "symbol", symbol, "rows", n)

	return n, nil
}
