package rpc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/daniilsolovey/my-site/internal/blog"
	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/daniilsolovey/my-site/internal/form"
	"github.com/vmkteam/zenrpc/v2"
)

const defaultPageSize = 20

//go:generate zenrpc

// BlogService provides RPC methods for the blog admin.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// Posts lists posts ordered by date ASC with optional filters.
//
//zenrpc:filter optional title, author and date filters with pagination
//zenrpc:return list of posts
//zenrpc:400 invalid date
//zenrpc:500 internal server error
func (s *BlogService) Posts(ctx context.Context, filter *PostFilter) ([]Post, error) {
	f, err := newPostFilter(filter)
	if err != nil {
		return nil, err
	}

	posts, err := s.manager.PostsByFilter(ctx, f)
	if err != nil {
		return nil, err
	}

	return Map(posts, NewPost), nil
}

// CreatePost validates and stores a new post. An empty slug is derived from the title.
//
//zenrpc:post post fields
//zenrpc:return created post
//zenrpc:400 validation failed
//zenrpc:500 internal server error
func (s *BlogService) CreatePost(ctx context.Context, post PostInput) (*Post, error) {
	f := post.ToForm()
	input, errs := f.Validate()
	if !errs.Valid() {
		return nil, newValidationError(errs)
	}

	created, err := s.manager.CreatePost(ctx, input)
	if err != nil {
		return nil, writeError(err)
	}

	p := NewPost(*created)
	return &p, nil
}

// UpdatePost replaces the fields of a post. The creation date is kept.
//
//zenrpc:postId post numeric ID
//zenrpc:post post fields
//zenrpc:return updated post
//zenrpc:400 validation failed
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) UpdatePost(ctx context.Context, postID int, post PostInput) (*Post, error) {
	f := post.ToForm()
	input, errs := f.Validate()
	if !errs.Valid() {
		return nil, newValidationError(errs)
	}

	updated, err := s.manager.UpdatePost(ctx, postID, input)
	if err != nil {
		return nil, writeError(err)
	}

	p := NewPost(*updated)
	return &p, nil
}

// DeletePost removes a post together with its comments.
//
//zenrpc:postId post numeric ID
//zenrpc:return true when the post was deleted
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) DeletePost(ctx context.Context, postID int) (bool, error) {
	if err := s.manager.DeletePost(ctx, postID); err != nil {
		return false, writeError(err)
	}

	return true, nil
}

// Authors lists all authors.
//
//zenrpc:return list of authors
//zenrpc:500 internal server error
func (s *BlogService) Authors(ctx context.Context) ([]Author, error) {
	authors, err := s.manager.Authors(ctx)
	if err != nil {
		return nil, err
	}

	return Map(authors, NewAuthor), nil
}

// CreateAuthor validates and stores an author.
//
//zenrpc:author author fields
//zenrpc:return created author
//zenrpc:400 validation failed
//zenrpc:500 internal server error
func (s *BlogService) CreateAuthor(ctx context.Context, author AuthorInput) (*Author, error) {
	f := author.ToForm()
	input, errs := f.Validate()
	if !errs.Valid() {
		return nil, newValidationError(errs)
	}

	created, err := s.manager.CreateAuthor(ctx, input)
	if err != nil {
		return nil, writeError(err)
	}

	a := NewAuthor(*created)
	return &a, nil
}

// DeleteAuthor removes an author. Their posts stay without an author.
//
//zenrpc:authorId author numeric ID
//zenrpc:return true when the author was deleted
//zenrpc:404 author not found
//zenrpc:500 internal server error
func (s *BlogService) DeleteAuthor(ctx context.Context, authorID int) (bool, error) {
	if err := s.manager.DeleteAuthor(ctx, authorID); err != nil {
		return false, writeError(err)
	}

	return true, nil
}

// Tags lists all tags.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return Map(tags, NewTag), nil
}

// CreateTag validates and stores a tag.
//
//zenrpc:tag tag fields
//zenrpc:return created tag
//zenrpc:400 validation failed
//zenrpc:500 internal server error
func (s *BlogService) CreateTag(ctx context.Context, tag TagInput) (*Tag, error) {
	f := tag.ToForm()
	input, errs := f.Validate()
	if !errs.Valid() {
		return nil, newValidationError(errs)
	}

	created, err := s.manager.CreateTag(ctx, input)
	if err != nil {
		return nil, writeError(err)
	}

	t := NewTag(*created)
	return &t, nil
}

// DeleteTag removes a tag and detaches it from every post.
//
//zenrpc:tagId tag numeric ID
//zenrpc:return true when the tag was deleted
//zenrpc:404 tag not found
//zenrpc:500 internal server error
func (s *BlogService) DeleteTag(ctx context.Context, tagID int) (bool, error) {
	if err := s.manager.DeleteTag(ctx, tagID); err != nil {
		return false, writeError(err)
	}

	return true, nil
}

func newPostFilter(filter *PostFilter) (db.PostFilter, error) {
	f := db.PostFilter{Limit: defaultPageSize}
	if filter == nil {
		return f, nil
	}

	if filter.Title != nil {
		f.Title = *filter.Title
	}
	f.AuthorID = filter.AuthorID

	if filter.Date != nil && *filter.Date != "" {
		date, err := time.Parse(form.DateLayout, *filter.Date)
		if err != nil {
			return f, zenrpc.NewStringError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		f.Date = &date
	}

	if filter.PageSize != nil && *filter.PageSize > 0 {
		f.Limit = *filter.PageSize
	}
	if filter.Page != nil && *filter.Page > 1 {
		f.Offset = (*filter.Page - 1) * f.Limit
	}

	return f, nil
}

func newValidationError(errs form.Errors) *zenrpc.Error {
	return &zenrpc.Error{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Data:    errs,
	}
}

// writeError maps repository errors to RPC errors.
func writeError(err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, "not found")
	case errors.Is(err, db.ErrDuplicate):
		return zenrpc.NewStringError(http.StatusBadRequest, "already exists")
	case errors.Is(err, blog.ErrUnknownTag):
		return zenrpc.NewStringError(http.StatusBadRequest, err.Error())
	}

	return err
}
