package blog

import (
	"github.com/daniilsolovey/my-site/internal/db"
)

type Author struct {
	db.Author
}

// FullName is the first and the last name joined by a space.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Tag struct {
	db.Tag
}

type Post struct {
	db.Post
	Tags []Tag
}

// AuthorName is the author's full name, empty for posts without an author.
func (p Post) AuthorName() string {
	if p.Post.Author == nil {
		return ""
	}

	return NewAuthor(p.Post.Author).FullName()
}

type PostDetail struct {
	Post
	Comments      []db.Comment
	SavedForLater bool
}

type ReadLater struct {
	Posts    []Post
	HasPosts bool
}
