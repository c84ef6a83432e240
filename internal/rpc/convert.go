package rpc

import (
	"strconv"

	"github.com/daniilsolovey/my-site/internal/blog"
	"github.com/daniilsolovey/my-site/internal/form"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p blog.Post) Post {
	post := Post{
		PostID:   p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Image:    p.Image,
		Date:     p.Date,
		Slug:     p.Slug,
		Content:  p.Content,
		AuthorID: p.AuthorID,
		Tags:     Map(p.Tags, NewTag),
	}

	if p.Post.Author != nil {
		author := NewAuthor(blog.NewAuthor(p.Post.Author))
		post.Author = &author
	}

	return post
}

func NewAuthor(a blog.Author) Author {
	return Author{
		AuthorID:     a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		EmailAddress: a.EmailAddress,
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID:   t.ID,
		Caption: t.Caption,
	}
}

// ToForm converts the input to the validated post form.
func (in PostInput) ToForm() form.Post {
	f := form.Post{
		Title:   in.Title,
		Excerpt: in.Excerpt,
		Image:   in.Image,
		Slug:    in.Slug,
		Content: in.Content,
	}

	if in.AuthorID != nil {
		f.AuthorID = strconv.Itoa(*in.AuthorID)
	}

	for _, id := range in.TagIDs {
		f.TagIDs = append(f.TagIDs, strconv.Itoa(id))
	}

	return f
}

func (in AuthorInput) ToForm() form.Author {
	return form.Author{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
	}
}

func (in TagInput) ToForm() form.Tag {
	return form.Tag{Caption: in.Caption}
}
