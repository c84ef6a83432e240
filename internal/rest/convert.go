package rest

import "github.com/daniilsolovey/my-site/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p blog.Post) Post {
	post := Post{
		PostID:  p.ID,
		Title:   p.Title,
		Excerpt: p.Excerpt,
		Image:   p.Image,
		Date:    p.Date,
		Slug:    p.Slug,
		Tags:    Map(p.Tags, NewTag),
	}

	if p.Post.Author != nil {
		post.Author = &Author{
			AuthorID:     p.Post.Author.ID,
			FullName:     p.AuthorName(),
			EmailAddress: p.Post.Author.EmailAddress,
		}
	}

	return post
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID:   t.ID,
		Caption: t.Caption,
	}
}
