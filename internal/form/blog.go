package form

import (
	"strconv"
	"strings"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/gosimple/slug"
)

// Comment is the reader comment form. It has no post field: the post always
// comes from the URL.
type Comment struct {
	UserName  string `form:"user_name" json:"userName" validate:"required,max=50"`
	UserEmail string `form:"user_email" json:"userEmail" validate:"required,email"`
	Text      string `form:"text" json:"text" validate:"required,max=500"`
}

// Validate returns a comment that is not attached to any post yet.
func (f *Comment) Validate() (db.Comment, Errors) {
	f.UserName = strings.TrimSpace(f.UserName)
	f.UserEmail = strings.TrimSpace(f.UserEmail)
	f.Text = strings.TrimSpace(f.Text)

	if errs := check(f); !errs.Valid() {
		return db.Comment{}, errs
	}

	return db.Comment{
		UserName:  f.UserName,
		UserEmail: f.UserEmail,
		Text:      f.Text,
	}, Errors{}
}

type Post struct {
	Title    string   `form:"title" json:"title" validate:"required,max=200"`
	Excerpt  string   `form:"excerpt" json:"excerpt" validate:"required,max=150"`
	Image    string   `form:"image" json:"image" validate:"max=100"`
	Slug     string   `form:"slug" json:"slug" validate:"required,max=50,slug"`
	Content  string   `form:"content" json:"content" validate:"required,min=10"`
	AuthorID string   `form:"author_id" json:"authorId" validate:"omitempty,integer"`
	TagIDs   []string `form:"tag_ids" json:"tagIds" validate:"dive,integer"`
}

// Validate derives the slug from the title when none was given.
func (f *Post) Validate() (db.Post, Errors) {
	f.Title = strings.TrimSpace(f.Title)
	f.Excerpt = strings.TrimSpace(f.Excerpt)
	f.Image = strings.TrimSpace(f.Image)
	f.Slug = strings.TrimSpace(f.Slug)
	f.Content = strings.TrimSpace(f.Content)
	f.AuthorID = strings.TrimSpace(f.AuthorID)

	if f.Slug == "" && f.Title != "" {
		f.Slug = slug.Make(f.Title)
	}

	if errs := check(f); !errs.Valid() {
		return db.Post{}, errs
	}

	post := db.Post{
		Title:   f.Title,
		Excerpt: f.Excerpt,
		Slug:    f.Slug,
		Content: f.Content,
		TagIDs:  make([]int, 0, len(f.TagIDs)),
	}

	if f.Image != "" {
		post.Image = &f.Image
	}

	if f.AuthorID != "" {
		authorID := parseInt(f.AuthorID)
		post.AuthorID = &authorID
	}

	seen := make(map[int]struct{}, len(f.TagIDs))
	for _, s := range f.TagIDs {
		id := parseInt(s)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		post.TagIDs = append(post.TagIDs, id)
	}

	return post, Errors{}
}

// NewPost fills the form from a stored post.
func NewPost(p *db.Post) Post {
	f := Post{
		Title:   p.Title,
		Excerpt: p.Excerpt,
		Slug:    p.Slug,
		Content: p.Content,
	}

	if p.Image != nil {
		f.Image = *p.Image
	}

	if p.AuthorID != nil {
		f.AuthorID = strconv.Itoa(*p.AuthorID)
	}

	for _, id := range p.TagIDs {
		f.TagIDs = append(f.TagIDs, strconv.Itoa(id))
	}

	return f
}

type Author struct {
	FirstName    string `form:"first_name" json:"firstName" validate:"required,max=100"`
	LastName     string `form:"last_name" json:"lastName" validate:"required,max=100"`
	EmailAddress string `form:"email_address" json:"emailAddress" validate:"required,email,max=254"`
}

func (f *Author) Validate() (db.Author, Errors) {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.EmailAddress = strings.TrimSpace(f.EmailAddress)

	if errs := check(f); !errs.Valid() {
		return db.Author{}, errs
	}

	return db.Author{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		EmailAddress: f.EmailAddress,
	}, Errors{}
}

type Tag struct {
	Caption string `form:"caption" json:"caption" validate:"required,max=20"`
}

func (f *Tag) Validate() (db.Tag, Errors) {
	f.Caption = strings.TrimSpace(f.Caption)

	if errs := check(f); !errs.Valid() {
		return db.Tag{}, errs
	}

	return db.Tag{Caption: f.Caption}, Errors{}
}
