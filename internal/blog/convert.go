package blog

import "github.com/daniilsolovey/my-site/internal/db"

func NewAuthor(a *db.Author) Author {
	return Author{Author: *a}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewPost(p *db.Post) Post {
	post := Post{Post: *p}
	if post.TagIDs == nil {
		post.TagIDs = []int{}
	}

	return post
}
