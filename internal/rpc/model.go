package rpc

import (
	"time"
)

type PostFilter struct {
	//title optional title substring
	Title *string `json:"title,omitempty"`
	//authorId optional author filter
	AuthorID *int `json:"authorId,omitempty"`
	//date optional creation date, YYYY-MM-DD
	Date *string `json:"date,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=20 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

// PostInput is a post as sent by admin clients.
type PostInput struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Content  string `json:"content"`
	AuthorID *int   `json:"authorId,omitempty"`
	TagIDs   []int  `json:"tagIds,omitempty"`
}

type AuthorInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type TagInput struct {
	Caption string `json:"caption"`
}

type Author struct {
	AuthorID     int    `json:"authorId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type Tag struct {
	TagID   int    `json:"tagId"`
	Caption string `json:"caption"`
}

type Post struct {
	PostID   int       `json:"postId"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Image    *string   `json:"image"`
	Date     time.Time `json:"date"`
	Slug     string    `json:"slug"`
	Content  string    `json:"content"`
	AuthorID *int      `json:"authorId"`
	Author   *Author   `json:"author"`
	Tags     []Tag     `json:"tags"`
}
