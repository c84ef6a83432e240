package rest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

// fakeRepo implements the blog and ledger repositories in memory.
type fakeRepo struct {
	posts    []db.Post
	authors  []db.Author
	tags     []db.Tag
	comments []db.Comment
	cashes   []db.Cash
	stocks   []db.Stock
	nextID   int
}

func newFakeRepo() *fakeRepo {
	ada := db.Author{ID: 1, FirstName: "Ada", LastName: "Lin", EmailAddress: "ada@example.com"}
	authorID := 1

	return &fakeRepo{
		nextID:  100,
		authors: []db.Author{ada},
		tags:    []db.Tag{{ID: 1, Caption: "golang"}, {ID: 2, Caption: "travel"}},
		posts: []db.Post{
			{ID: 1, Title: "Hello World", Excerpt: "The first post", Slug: "hello-world", Content: "Every blog starts somewhere.", Date: baseTime.AddDate(0, 0, -4), TagIDs: []int{1}, AuthorID: &authorID, Author: &ada},
			{ID: 2, Title: "Mountains", Excerpt: "A week in the hills", Slug: "mountains", Content: "We walked for days.", Date: baseTime.AddDate(0, 0, -3), TagIDs: []int{2}},
			{ID: 3, Title: "Dividends", Excerpt: "Notes on cash flow", Slug: "dividends", Content: "Paid twice a year.", Date: baseTime.AddDate(0, 0, -2), TagIDs: []int{}},
			{ID: 4, Title: "Anonymous", Excerpt: "No author", Slug: "anonymous", Content: "Written by nobody.", Date: baseTime.AddDate(0, 0, -1), TagIDs: []int{}},
		},
		cashes: []db.Cash{
			{ID: 1, Ntd: 1000, Usd: decimal.Zero, Note: "wallet", Date: baseTime.AddDate(0, 0, -2)},
			{ID: 2, Ntd: 0, Usd: decimal.NewFromInt(10), Note: "usd account", Date: baseTime.AddDate(0, 0, -1)},
		},
		stocks: []db.Stock{
			{ID: 1, StockSymbol: "2330", StockCount: 100, StockPrice: decimal.RequireFromString("500.00"), ProcessingFee: decimal.NewFromInt(20), Tax: decimal.NewFromInt(3), Date: baseTime.AddDate(0, 0, -3)},
			{ID: 2, StockSymbol: "0050", StockCount: 10, StockPrice: decimal.RequireFromString("130.50"), ProcessingFee: decimal.Zero, Tax: decimal.Zero, Date: baseTime.AddDate(0, 0, -1)},
		},
	}
}

func (r *fakeRepo) id() int {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) sortedPosts() []db.Post {
	out := append([]db.Post(nil), r.posts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeRepo) LatestPosts(_ context.Context, limit int) ([]db.Post, error) {
	out := r.sortedPosts()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) Posts(context.Context) ([]db.Post, error) { return r.sortedPosts(), nil }

func (r *fakeRepo) PostsByFilter(_ context.Context, f db.PostFilter) ([]db.Post, error) {
	out := []db.Post{}
	for i := len(r.posts) - 1; i >= 0; i-- {
		p := r.posts[i]
		if f.AuthorID != nil && (p.AuthorID == nil || *p.AuthorID != *f.AuthorID) {
			continue
		}
		if f.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Title)) {
			continue
		}
		if f.Date != nil && !p.Date.Equal(*f.Date) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeRepo) PostBySlug(_ context.Context, slug string) (*db.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *fakeRepo) PostByID(_ context.Context, id int) (*db.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *fakeRepo) PostsByIDs(_ context.Context, ids []int) ([]db.Post, error) {
	out := []db.Post{}
	for _, p := range r.sortedPosts() {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) CreatePost(_ context.Context, p *db.Post) error {
	p.ID = r.id()
	r.posts = append(r.posts, *p)
	return nil
}

func (r *fakeRepo) UpdatePost(context.Context, *db.Post) error { return errors.New("not implemented") }
func (r *fakeRepo) DeletePost(context.Context, int) error      { return errors.New("not implemented") }

func (r *fakeRepo) Authors(context.Context) ([]db.Author, error)     { return r.authors, nil }
func (r *fakeRepo) CreateAuthor(context.Context, *db.Author) error   { return errors.New("not implemented") }
func (r *fakeRepo) DeleteAuthor(context.Context, int) error          { return errors.New("not implemented") }
func (r *fakeRepo) Tags(context.Context) ([]db.Tag, error)           { return r.tags, nil }
func (r *fakeRepo) CreateTag(context.Context, *db.Tag) error         { return errors.New("not implemented") }
func (r *fakeRepo) DeleteTag(context.Context, int) error             { return errors.New("not implemented") }

func (r *fakeRepo) TagsByIDs(_ context.Context, ids []int) ([]db.Tag, error) {
	out := []db.Tag{}
	for _, t := range r.tags {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateComment(_ context.Context, c *db.Comment) error {
	c.ID = r.id()
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeRepo) CommentsByPost(_ context.Context, postID int) ([]db.Comment, error) {
	out := []db.Comment{}
	for i := len(r.comments) - 1; i >= 0; i-- {
		if r.comments[i].PostID == postID {
			out = append(out, r.comments[i])
		}
	}
	return out, nil
}

func (r *fakeRepo) CashTotal(context.Context) (db.CashTotal, error) {
	total := db.CashTotal{Usd: decimal.Zero}
	for _, c := range r.cashes {
		total.Ntd += c.Ntd
		total.Usd = total.Usd.Add(c.Usd)
	}
	return total, nil
}

func (r *fakeRepo) Cashes(context.Context) ([]db.Cash, error) {
	out := append([]db.Cash{}, r.cashes...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeRepo) CashByID(_ context.Context, id int) (*db.Cash, error) {
	for _, c := range r.cashes {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *fakeRepo) CreateCash(_ context.Context, c *db.Cash) error {
	c.ID = r.id()
	r.cashes = append(r.cashes, *c)
	return nil
}

func (r *fakeRepo) UpdateCash(_ context.Context, c *db.Cash) error {
	for i := range r.cashes {
		if r.cashes[i].ID == c.ID {
			r.cashes[i] = *c
			return nil
		}
	}
	return db.ErrNotFound
}

func (r *fakeRepo) DeleteCash(_ context.Context, id int) (int, error) {
	for i := range r.cashes {
		if r.cashes[i].ID == id {
			r.cashes = append(r.cashes[:i], r.cashes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeRepo) Stocks(context.Context) ([]db.Stock, error) {
	out := append([]db.Stock{}, r.stocks...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeRepo) StockBySymbol(_ context.Context, symbol string) (*db.Stock, error) {
	for _, s := range r.stocks {
		if s.StockSymbol == symbol {
			return &s, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *fakeRepo) CreateStock(_ context.Context, s *db.Stock) error {
	s.ID = r.id()
	r.stocks = append(r.stocks, *s)
	return nil
}

func (r *fakeRepo) UpdateStock(_ context.Context, s *db.Stock) error {
	for i := range r.stocks {
		if r.stocks[i].ID == s.ID {
			r.stocks[i] = *s
			return nil
		}
	}
	return db.ErrNotFound
}

func (r *fakeRepo) DeleteStocksBySymbol(_ context.Context, symbol string) (int, error) {
	if symbol == "" {
		return 0, nil
	}
	kept := r.stocks[:0]
	n := 0
	for _, s := range r.stocks {
		if s.StockSymbol == symbol {
			n++
			continue
		}
		kept = append(kept, s)
	}
	r.stocks = kept
	return n, nil
}

type fakeQuotes struct {
	rate   decimal.Decimal
	prices map[string]decimal.Decimal
}

func (q fakeQuotes) ExchangeRate(context.Context) decimal.Decimal { return q.rate }

func (q fakeQuotes) CurrentPrice(_ context.Context, symbol string) decimal.Decimal {
	return q.prices[symbol]
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }
