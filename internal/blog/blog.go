// Package blog serves posts, comments and the per-session read-later list.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/daniilsolovey/my-site/internal/session"
)

const LatestPostsLimit = 3

var ErrUnknownTag = errors.New("unknown tag")

type Repository interface {
	LatestPosts(ctx context.Context, limit int) ([]db.Post, error)
	Posts(ctx context.Context) ([]db.Post, error)
	PostsByFilter(ctx context.Context, f db.PostFilter) ([]db.Post, error)
	PostBySlug(ctx context.Context, slug string) (*db.Post, error)
	PostByID(ctx context.Context, postID int) (*db.Post, error)
	PostsByIDs(ctx context.Context, postIDs []int) ([]db.Post, error)
	CreatePost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post) error
	DeletePost(ctx context.Context, postID int) error

	Authors(ctx context.Context) ([]db.Author, error)
	CreateAuthor(ctx context.Context, author *db.Author) error
	DeleteAuthor(ctx context.Context, authorID int) error

	Tags(ctx context.Context) ([]db.Tag, error)
	TagsByIDs(ctx context.Context, tagIDs []int) ([]db.Tag, error)
	CreateTag(ctx context.Context, tag *db.Tag) error
	DeleteTag(ctx context.Context, tagID int) error

	CreateComment(ctx context.Context, comment *db.Comment) error
	CommentsByPost(ctx context.Context, postID int) ([]db.Comment, error)
}

type Manager struct {
	db       Repository
	sessions session.Store
	logger   *slog.Logger
}

func NewBlogManager(repo Repository, sessions session.Store, logger *slog.Logger) *Manager {
	return &Manager{
		db:       repo,
		sessions: sessions,
		logger:   logger,
	}
}

// LatestPosts returns the three newest posts for the landing page.
func (m *Manager) LatestPosts(ctx context.Context) ([]Post, error) {
	list, err := m.db.LatestPosts(ctx, LatestPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("db get latest posts: %w", err)
	}

	return m.withTags(ctx, NewPostList(list))
}

// Posts returns every post, newest first.
func (m *Manager) Posts(ctx context.Context) ([]Post, error) {
	list, err := m.db.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return m.withTags(ctx, NewPostList(list))
}

// PostsByFilter is the admin listing, oldest first.
func (m *Manager) PostsByFilter(ctx context.Context, f db.PostFilter) ([]Post, error) {
	list, err := m.db.PostsByFilter(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("db get posts by filter: %w", err)
	}

	return m.withTags(ctx, NewPostList(list))
}

// PostDetail loads the post with its tags and comments and tells whether the
// session saved it for later.
func (m *Manager) PostDetail(ctx context.Context, slug, sid string) (*PostDetail, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}

	posts, err := m.withTags(ctx, NewPostList([]db.Post{*dbPost}))
	if err != nil {
		return nil, err
	}

	comments, err := m.db.CommentsByPost(ctx, dbPost.ID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	saved, err := m.IsSavedForLater(ctx, sid, dbPost.ID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:          posts[0],
		Comments:      comments,
		SavedForLater: saved,
	}, nil
}

// AddComment attaches the comment to the post found by slug, whatever post id
// the comment carried.
func (m *Manager) AddComment(ctx context.Context, slug string, comment db.Comment) (*db.Comment, error) {
	post, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}

	comment.ID = 0
	comment.PostID = post.ID
	comment.Post = nil
	if err := m.db.CreateComment(ctx, &comment); err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}
	m.logger.InfoContext(ctx, "comment created", "commentId", comment.ID, "postId", post.ID)

	return &comment, nil
}

// ToggleReadLaterBySlug toggles the post found by slug and reports whether
// it is saved afterwards.
func (m *Manager) ToggleReadLaterBySlug(ctx context.Context, sid, slug string) (bool, error) {
	post, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("db get post: %w", err)
	}

	return m.ToggleReadLater(ctx, sid, post.ID)
}

// ToggleReadLater adds the id when absent and removes it when present.
func (m *Manager) ToggleReadLater(ctx context.Context, sid string, postID int) (bool, error) {
	ids, err := m.sessions.Update(ctx, sid, session.ReadLaterKey, func(ids []int) []int {
		return session.Toggle(ids, postID)
	})
	if err != nil {
		return false, fmt.Errorf("toggle read later: %w", err)
	}

	return slices.Contains(ids, postID), nil
}

func (m *Manager) IsSavedForLater(ctx context.Context, sid string, postID int) (bool, error) {
	ids, err := m.sessions.IDs(ctx, sid, session.ReadLaterKey)
	if err != nil {
		return false, fmt.Errorf("get read later: %w", err)
	}

	return slices.Contains(ids, postID), nil
}

// ReadLater returns the saved posts. HasPosts follows the stored list, so
// ids of deleted posts still count.
func (m *Manager) ReadLater(ctx context.Context, sid string) (*ReadLater, error) {
	ids, err := m.sessions.IDs(ctx, sid, session.ReadLaterKey)
	if err != nil {
		return nil, fmt.Errorf("get read later: %w", err)
	}

	if len(ids) == 0 {
		return &ReadLater{Posts: []Post{}, HasPosts: false}, nil
	}

	list, err := m.db.PostsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get posts by ids: %w", err)
	}

	posts, err := m.withTags(ctx, NewPostList(list))
	if err != nil {
		return nil, err
	}

	return &ReadLater{Posts: posts, HasPosts: true}, nil
}

func (m *Manager) CreatePost(ctx context.Context, post db.Post) (*Post, error) {
	if err := m.checkTags(ctx, post.TagIDs); err != nil {
		return nil, err
	}

	post.ID = 0
	if err := m.db.CreatePost(ctx, &post); err != nil {
		return nil, fmt.Errorf("db create post: %w", err)
	}
	m.logger.InfoContext(ctx, "post created", "postId", post.ID, "slug", post.Slug)

	result := NewPost(&post)
	return &result, nil
}

// UpdatePost overwrites the post except its creation date.
func (m *Manager) UpdatePost(ctx context.Context, postID int, post db.Post) (*Post, error) {
	if err := m.checkTags(ctx, post.TagIDs); err != nil {
		return nil, err
	}

	post.ID = postID
	if err := m.db.UpdatePost(ctx, &post); err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	}
	m.logger.InfoContext(ctx, "post updated", "postId", post.ID)

	stored, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}

	result := NewPost(stored)
	return &result, nil
}

func (m *Manager) DeletePost(ctx context.Context, postID int) error {
	if err := m.db.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}
	m.logger.InfoContext(ctx, "post deleted", "postId", postID)

	return nil
}

func (m *Manager) Authors(ctx context.Context) ([]Author, error) {
	list, err := m.db.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get authors: %w", err)
	}

	return NewAuthors(list), nil
}

func (m *Manager) CreateAuthor(ctx context.Context, author db.Author) (*Author, error) {
	author.ID = 0
	if err := m.db.CreateAuthor(ctx, &author); err != nil {
		return nil, fmt.Errorf("db create author: %w", err)
	}
	m.logger.InfoContext(ctx, "author created", "authorId", author.ID)

	result := NewAuthor(&author)
	return &result, nil
}

// DeleteAuthor keeps the author's posts; they lose their author.
func (m *Manager) DeleteAuthor(ctx context.Context, authorID int) error {
	if err := m.db.DeleteAuthor(ctx, authorID); err != nil {
		return fmt.Errorf("db delete author: %w", err)
	}
	m.logger.InfoContext(ctx, "author deleted", "authorId", authorID)

	return nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

func (m *Manager) CreateTag(ctx context.Context, tag db.Tag) (*Tag, error) {
	tag.ID = 0
	if err := m.db.CreateTag(ctx, &tag); err != nil {
		return nil, fmt.Errorf("db create tag: %w", err)
	}
	m.logger.InfoContext(ctx, "tag created", "tagId", tag.ID)

	result := NewTag(&tag)
	return &result, nil
}

// DeleteTag removes the tag from every post and deletes it.
func (m *Manager) DeleteTag(ctx context.Context, tagID int) error {
	if err := m.db.DeleteTag(ctx, tagID); err != nil {
		return fmt.Errorf("db delete tag: %w", err)
	}
	m.logger.InfoContext(ctx, "tag deleted", "tagId", tagID)

	return nil
}

func (m *Manager) withTags(ctx context.Context, posts PostList) (PostList, error) {
	tags, err := m.db.TagsByIDs(ctx, posts.UniqueTagIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to posts: %w", err)
	}

	posts.SetTags(NewTags(tags))

	return posts, nil
}

func (m *Manager) checkTags(ctx context.Context, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}

	tags, err := m.db.TagsByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("db get tags: %w", err)
	}

	known := NewTags(tags).IndexByID()
	for _, id := range tagIDs {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("tag %d: %w", id, ErrUnknownTag)
		}
	}

	return nil
}
