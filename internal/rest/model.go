package rest

import (
	"time"

	"github.com/go-pg/urlstruct"
)

type Author struct {
	AuthorID     int    `json:"authorId"`
	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`
}

type Tag struct {
	TagID   int    `json:"tagId"`
	Caption string `json:"caption"`
}

type Post struct {
	PostID  int       `json:"postId"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Image   *string   `json:"image"`
	Date    time.Time `json:"date"`
	Slug    string    `json:"slug"`
	Author  *Author   `json:"author"`
	Tags    []Tag     `json:"tags"`
}

// PostsRequest is decoded from the query string by urlstruct:
// ?title=go&author_id=1&date=2024-01-14&limit=20&page=2
type PostsRequest struct {
	urlstruct.Pager
	Title    string
	AuthorID int
	Date     string
}
