package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	cashes map[int]db.Cash
	stocks map[int]db.Stock
	nextID int
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		cashes: map[int]db.Cash{},
		stocks: map[int]db.Stock{},
		nextID: 1,
	}
}

func (r *fakeRepo) id() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *fakeRepo) CashTotal(context.Context) (db.CashTotal, error) {
	total := db.CashTotal{Usd: decimal.Zero}
	for _, c := range r.cashes {
		total.Ntd += c.Ntd
		total.Usd = total.Usd.Add(c.Usd)
	}
	return total, r.err
}

func (r *fakeRepo) Cashes(context.Context) ([]db.Cash, error) {
	list := []db.Cash{}
	for _, c := range r.cashes {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, r.err
}

func (r *fakeRepo) CashByID(_ context.Context, id int) (*db.Cash, error) {
	c, ok := r.cashes[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &c, nil
}

func (r *fakeRepo) CreateCash(_ context.Context, c *db.Cash) error {
	c.ID = r.id()
	r.cashes[c.ID] = *c
	return nil
}

func (r *fakeRepo) UpdateCash(_ context.Context, c *db.Cash) error {
	if _, ok := r.cashes[c.ID]; !ok {
		return db.ErrNotFound
	}
	r.cashes[c.ID] = *c
	return nil
}

func (r *fakeRepo) DeleteCash(_ context.Context, id int) (int, error) {
	if _, ok := r.cashes[id]; !ok {
		return 0, nil
	}
	delete(r.cashes, id)
	return 1, nil
}

func (r *fakeRepo) Stocks(context.Context) ([]db.Stock, error) {
	list := []db.Stock{}
	for _, s := range r.stocks {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, r.err
}

func (r *fakeRepo) StockBySymbol(_ context.Context, symbol string) (*db.Stock, error) {
	var found *db.Stock
	for _, s := range r.stocks {
		if s.StockSymbol == symbol && (found == nil || s.ID < found.ID) {
			s := s
			found = &s
		}
	}
	if found == nil {
		return nil, db.ErrNotFound
	}
	return found, nil
}

func (r *fakeRepo) CreateStock(_ context.Context, s *db.Stock) error {
	s.ID = r.id()
	r.stocks[s.ID] = *s
	return nil
}

func (r *fakeRepo) UpdateStock(_ context.Context, s *db.Stock) error {
	if _, ok := r.stocks[s.ID]; !ok {
		return db.ErrNotFound
	}
	r.stocks[s.ID] = *s
	return nil
}

func (r *fakeRepo) DeleteStocksBySymbol(_ context.Context, symbol string) (int, error) {
	if symbol == "" {
		return 0, nil
	}
	n := 0
	for id, s := range r.stocks {
		if s.StockSymbol == symbol {
			delete(r.stocks, id)
			n++
		}
	}
	return n, nil
}

type fakeQuotes struct {
	rate       decimal.Decimal
	prices     map[string]decimal.Decimal
	rateCalls  int
	priceCalls map[string]int
}

func (q *fakeQuotes) ExchangeRate(context.Context) decimal.Decimal {
	q.rateCalls++
	return q.rate
}

func (q *fakeQuotes) CurrentPrice(_ context.Context, symbol string) decimal.Decimal {
	if q.priceCalls == nil {
		q.priceCalls = map[string]int{}
	}
	q.priceCalls[symbol]++
	return q.prices[symbol]
}

func newTestManager() (*Manager, *fakeRepo, *fakeQuotes) {
	repo := newFakeRepo()
	quotes := &fakeQuotes{rate: decimal.Zero, prices: map[string]decimal.Decimal{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLedgerManager(repo, quotes, logger), repo, quotes
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestManager_SaveStock_MergesIntoExistingSymbol(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newTestManager()

	_, err := m.SaveStock(ctx, nil, db.Stock{
		StockSymbol: "2330", StockCount: 100, StockPrice: dec("500.00"),
		ProcessingFee: dec("20"), Tax: dec("3"), Date: day(1),
	})
	require.NoError(t, err)

	merged, err := m.SaveStock(ctx, nil, db.Stock{
		StockSymbol: "2330", StockCount: 50, StockPrice: dec("550.00"),
		ProcessingFee: dec("10"), Tax: dec("1"), Date: day(5),
	})
	require.NoError(t, err)

	require.Len(t, repo.stocks, 1)
	stored := repo.stocks[merged.ID]
	assert.Equal(t, 150, stored.StockCount)
	assertDecimal(t, "550.00", stored.StockPrice)
	assertDecimal(t, "30", stored.ProcessingFee)
	assertDecimal(t, "4", stored.Tax)
	assert.Equal(t, day(5), stored.Date)
}

func TestManager_SaveStock_MergeOutOfRange(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newTestManager()

	first, err := m.SaveStock(ctx, nil, db.Stock{
		StockSymbol: "2330", StockCount: math.MaxInt32 - 10, StockPrice: dec("500.00"), Date: day(1),
	})
	require.NoError(t, err)

	_, err = m.SaveStock(ctx, nil, db.Stock{
		StockSymbol: "2330", StockCount: 11, StockPrice: dec("550.00"), Date: day(5),
	})
	require.ErrorIs(t, err, ErrCountOutOfRange)

	stored := repo.stocks[first.ID]
	assert.Equal(t, math.MaxInt32-10, stored.StockCount)
	assertDecimal(t, "500.00", stored.StockPrice)
}

func TestManager_SaveStock_NewSymbolIsVerbatim(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newTestManager()

	input := db.Stock{
		StockSymbol: "0050", StockCount: 10, StockPrice: dec("130.50"),
		ProcessingFee: dec("1.5"), Tax: dec("0.25"), Date: day(3),
	}
	created, err := m.SaveStock(ctx, nil, input)
	require.NoError(t, err)

	stored := repo.stocks[created.ID]
	input.ID = created.ID
	assert.Equal(t, input, stored)
}

func TestManager_SaveStock_EditedRowWithNewSymbol(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newTestManager()

	original, err := m.SaveStock(ctx, nil, db.Stock{
		StockSymbol: "2303", StockCount: 10, StockPrice: dec("50"),
		ProcessingFee: decimal.Zero, Tax: decimal.Zero, Date: day(1),
	})
	require.NoError(t, err)

	edited, err := m.StockBySymbol(ctx, "2303")
	require.NoError(t, err)

	updated, err := m.SaveStock(ctx, edited, db.Stock{
		StockSymbol: "2308", StockCount: 12, StockPrice: dec("51"),
		ProcessingFee: decimal.Zero, Tax: decimal.Zero, Date: day(2),
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	require.Len(t, repo.stocks, 1)
	assert.Equal(t, "2308", repo.stocks[original.ID].StockSymbol)
	assert.Equal(t, 12, repo.stocks[original.ID].StockCount)
}

func TestManager_SaveStock_RepositoryError(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager()
	m.db = &brokenRepo{fakeRepo: newFakeRepo()}

	_, err := m.SaveStock(ctx, nil, db.Stock{StockSymbol: "2330"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, db.ErrNotFound))
}

type brokenRepo struct {
	*fakeRepo
}

func (r *brokenRepo) StockBySymbol(context.Context, string) (*db.Stock, error) {
	return nil, errors.New("connection reset")
}

func TestManager_DeleteStocks(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newTestManager()

	_, err := m.SaveStock(ctx, nil, db.Stock{StockSymbol: "2330", StockCount: 1, StockPrice: dec("1"), ProcessingFee: decimal.Zero, Tax: decimal.Zero})
	require.NoError(t, err)

	n, err := m.DeleteStocks(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, repo.stocks, 1, "empty symbol must not delete anything")

	n, err = m.DeleteStocks(ctx, "2330")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, repo.stocks)
}

func TestManager_SaveCash(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newTestManager()

	created, err := m.SaveCash(ctx, 0, db.Cash{Ntd: 1000, Usd: decimal.Zero, Note: "wallet", Date: day(1)})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := m.SaveCash(ctx, created.ID, db.Cash{Ntd: 1500, Usd: dec("2"), Note: "wallet", Date: day(2)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1500, repo.cashes[created.ID].Ntd)

	_, err = m.SaveCash(ctx, 999, db.Cash{Ntd: 1})
	assert.ErrorIs(t, err, db.ErrNotFound)

	require.NoError(t, m.DeleteCash(ctx, created.ID))
	require.NoError(t, m.DeleteCash(ctx, created.ID))
	assert.Empty(t, repo.cashes)
}

func TestManager_Dashboard(t *testing.T) {
	ctx := context.Background()
	m, repo, quotes := newTestManager()

	repo.cashes[1] = db.Cash{ID: 1, Ntd: 1000, Usd: decimal.Zero, Date: day(1)}
	repo.cashes[2] = db.Cash{ID: 2, Ntd: 0, Usd: dec("10"), Date: day(2)}
	repo.stocks[1] = db.Stock{ID: 1, StockSymbol: "2330", StockCount: 100, StockPrice: dec("500"), ProcessingFee: dec("20"), Tax: dec("3")}
	repo.stocks[2] = db.Stock{ID: 2, StockSymbol: "2330", StockCount: 5, StockPrice: dec("510"), ProcessingFee: decimal.Zero, Tax: decimal.Zero}
	repo.stocks[3] = db.Stock{ID: 3, StockSymbol: "0050", StockCount: 10, StockPrice: dec("130"), ProcessingFee: decimal.Zero, Tax: decimal.Zero}

	quotes.rate = dec("32.123")
	quotes.prices["2330"] = dec("600")

	dash, err := m.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, quotes.rateCalls)
	assert.Equal(t, map[string]int{"2330": 1, "0050": 1}, quotes.priceCalls)

	assertDecimal(t, "1321.23", dash.TotalCash)
	assertDecimal(t, "63000", dash.TotalStockValue)
	require.Len(t, dash.Holdings, 3)
	assertDecimal(t, "0", dash.Holdings[2].CurrentValue, "missing quote values at zero")
	assert.Len(t, dash.Cashes, 2)
	assert.Len(t, dash.Stocks, 3)
}

func TestManager_Dashboard_RepositoryError(t *testing.T) {
	m, repo, quotes := newTestManager()
	repo.err = errors.New("db down")

	_, err := m.Dashboard(context.Background())
	require.Error(t, err)
	assert.Zero(t, quotes.rateCalls)
}
