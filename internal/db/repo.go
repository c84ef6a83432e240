package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/shopspring/decimal"
)

const (
	uniqueViolation = "23505"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// PostFilter narrows the admin post listing. Zero fields are ignored.
type PostFilter struct {
	Title    string
	AuthorID *int
	Date     *time.Time
	Limit    int
	Offset   int
}

// CashTotal is the sum of every cash row.
type CashTotal struct {
	Ntd int
	Usd decimal.Decimal
}

// LatestPosts returns up to limit posts, newest first.
func (r *Repository) LatestPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Author").
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."postId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query latest posts: %w", err)
	}

	return posts, nil
}

// Posts returns all posts sorted by date DESC.
func (r *Repository) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Author").
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."postId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostsByFilter is the admin listing: ordered by date ASC with optional
// title, author and date filters.
func (r *Repository) PostsByFilter(ctx context.Context, f PostFilter) ([]Post, error) {
	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation("Author")

	if f.Title != "" {
		query = query.Where(`"t"."title" ILIKE ?`, "%"+f.Title+"%")
	}

	if f.AuthorID != nil {
		query = query.Where(`"t"."authorId" = ?`, *f.AuthorID)
	}

	if f.Date != nil {
		query = query.Where(`"t"."date" = ?`, f.Date.Format(time.DateOnly))
	}

	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	err := query.
		OrderExpr(`"t"."date" ASC`).
		OrderExpr(`"t"."postId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by filter: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Author").
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Author").
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) PostsByIDs(ctx context.Context, postIDs []int) ([]Post, error) {
	if len(postIDs) == 0 {
		return []Post{}, nil
	}

	posts := []Post{}
	err := r.db.ModelContext(ctx, &posts).
		Relation("Author").
		Where(`"t"."postId" IN (?)`, pg.In(postIDs)).
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."postId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by ids: %w", err)
	}

	return posts, nil
}

// CreatePost inserts the post. A zero date is replaced by today.
func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	if post.Date.IsZero() {
		post.Date = today()
	}
	if post.TagIDs == nil {
		post.TagIDs = []int{}
	}

	_, err := r.db.ModelContext(ctx, post).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", wrapPgError(err))
	}

	return nil
}

// UpdatePost saves everything except the creation date.
func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	if post.TagIDs == nil {
		post.TagIDs = []int{}
	}

	res, err := r.db.ModelContext(ctx, post).
		Column(
			Columns.Post.Title,
			Columns.Post.Excerpt,
			Columns.Post.Image,
			Columns.Post.Slug,
			Columns.Post.Content,
			Columns.Post.AuthorID,
			Columns.Post.TagIDs,
		).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", wrapPgError(err))
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
	}

	return nil
}

// DeletePost removes the post; its comments go with it (ON DELETE CASCADE).
func (r *Repository) DeletePost(ctx context.Context, postID int) error {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"postId" = ?`, postID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		OrderExpr(`"lastName" ASC`).
		OrderExpr(`"firstName" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	return authors, nil
}

func (r *Repository) AuthorByID(ctx context.Context, authorID int) (*Author, error) {
	author := &Author{}
	err := r.db.ModelContext(ctx, author).
		Where(`"authorId" = ?`, authorID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("author %d: %w", authorID, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return author, nil
}

func (r *Repository) CreateAuthor(ctx context.Context, author *Author) error {
	if _, err := r.db.ModelContext(ctx, author).Insert(); err != nil {
		return fmt.Errorf("failed to insert author: %w", wrapPgError(err))
	}

	return nil
}

// DeleteAuthor removes the author; posts keep existing with a NULL author.
func (r *Repository) DeleteAuthor(ctx context.Context, authorID int) error {
	res, err := r.db.ModelContext(ctx, (*Author)(nil)).
		Where(`"authorId" = ?`, authorID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("author %d: %w", authorID, ErrNotFound)
	}

	return nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"caption" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"caption" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

func (r *Repository) CreateTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return fmt.Errorf("failed to insert tag: %w", wrapPgError(err))
	}

	return nil
}

// DeleteTag detaches the tag from every post and removes it.
func (r *Repository) DeleteTag(ctx context.Context, tagID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE "posts" SET "tagIds" = array_remove("tagIds", ?) WHERE ? = ANY("tagIds")`,
		tagID, tagID,
	)
	if err != nil {
		return fmt.Errorf("failed to detach tag from posts: %w", err)
	}

	res, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"tagId" = ?`, tagID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
	}

	return nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", wrapPgError(err))
	}

	return nil
}

// CommentsByPost returns the comments of a post, newest id first.
func (r *Repository) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."commentId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// CashTotal sums ntd and usd over all cash rows, zero when there are none.
func (r *Repository) CashTotal(ctx context.Context) (CashTotal, error) {
	var total CashTotal
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&total.Ntd, &total.Usd),
		`SELECT COALESCE(SUM("ntd"), 0), COALESCE(SUM("usd"), 0) FROM "cashes"`)
	if err != nil {
		return CashTotal{}, fmt.Errorf("failed to sum cash: %w", err)
	}

	return total, nil
}

// Cashes returns all cash rows sorted by date DESC.
func (r *Repository) Cashes(ctx context.Context) ([]Cash, error) {
	cashes := []Cash{}
	err := r.db.ModelContext(ctx, &cashes).
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."cashId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query cashes: %w", err)
	}

	return cashes, nil
}

func (r *Repository) CashByID(ctx context.Context, cashID int) (*Cash, error) {
	cash := &Cash{}
	err := r.db.ModelContext(ctx, cash).
		Where(`"t"."cashId" = ?`, cashID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("cash %d: %w", cashID, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get cash by id: %w", err)
	}

	return cash, nil
}

func (r *Repository) CreateCash(ctx context.Context, cash *Cash) error {
	if _, err := r.db.ModelContext(ctx, cash).Insert(); err != nil {
		return fmt.Errorf("failed to insert cash: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCash(ctx context.Context, cash *Cash) error {
	res, err := r.db.ModelContext(ctx, cash).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update cash: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("cash %d: %w", cash.ID, ErrNotFound)
	}

	return nil
}

// DeleteCash removes the row if it exists. Deleting a missing id is not an error.
func (r *Repository) DeleteCash(ctx context.Context, cashID int) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Cash)(nil)).
		Where(`"cashId" = ?`, cashID).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete cash: %w", err)
	}

	return res.RowsAffected(), nil
}

// Stocks returns all stock rows sorted by date DESC.
func (r *Repository) Stocks(ctx context.Context) ([]Stock, error) {
	stocks := []Stock{}
	err := r.db.ModelContext(ctx, &stocks).
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."stockId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}

	return stocks, nil
}

// StockBySymbol returns the first row (lowest id) with the symbol.
func (r *Repository) StockBySymbol(ctx context.Context, symbol string) (*Stock, error) {
	stock := &Stock{}
	err := r.db.ModelContext(ctx, stock).
		Where(`"t"."stockSymbol" = ?`, symbol).
		OrderExpr(`"t"."stockId" ASC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("stock %q: %w", symbol, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get stock by symbol: %w", err)
	}

	return stock, nil
}

func (r *Repository) CreateStock(ctx context.Context, stock *Stock) error {
	if _, err := r.db.ModelContext(ctx, stock).Insert(); err != nil {
		return fmt.Errorf("failed to insert stock: %w", err)
	}

	return nil
}

func (r *Repository) UpdateStock(ctx context.Context, stock *Stock) error {
	res, err := r.db.ModelContext(ctx, stock).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("stock %d: %w", stock.ID, ErrNotFound)
	}

	return nil
}

// DeleteStocksBySymbol removes every row with the symbol and reports how many
// went. An empty symbol matches nothing.
func (r *Repository) DeleteStocksBySymbol(ctx context.Context, symbol string) (int, error) {
	if symbol == "" {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Stock)(nil)).
		Where(`"stockSymbol" = ?`, symbol).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete stocks: %w", err)
	}

	return res.RowsAffected(), nil
}

func wrapPgError(err error) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.Field('n'))
	}

	return err
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
