package blog

import "github.com/daniilsolovey/my-site/internal/db"

type (
	PostList []Post
	Authors  []Author
	Tags     []Tag
)

func NewPostList(in []db.Post) PostList {
	out := make(PostList, len(in))
	for i := range in {
		out[i] = NewPost(&in[i])
	}

	return out
}

func NewAuthors(in []db.Author) Authors {
	out := make(Authors, len(in))
	for i := range in {
		out[i] = NewAuthor(&in[i])
	}

	return out
}

func NewTags(in []db.Tag) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTag(&in[i])
	}

	return out
}

// UniqueTagIDs returns every tag id used by the posts, in first-seen order.
func (ll PostList) UniqueTagIDs() []int {
	seen := make(map[int]struct{})
	ids := []int{}
	for i := range ll {
		for _, id := range ll[i].TagIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}

// SetTags attaches tags to the posts in TagIDs order. Unknown ids are skipped.
func (ll PostList) SetTags(tags Tags) {
	tagIndex := tags.IndexByID()
	for i := range ll {
		ll[i].Tags = make([]Tag, 0, len(ll[i].TagIDs))
		for _, tagID := range ll[i].TagIDs {
			if tag, ok := tagIndex[tagID]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}

func (tt Tags) IndexByID() map[int]Tag {
	index := make(map[int]Tag, len(tt))
	for _, t := range tt {
		index[t.ID] = t
	}

	return index
}

func (tt Tags) IDs() []int {
	ids := make([]int, len(tt))
	for i := range tt {
		ids[i] = tt[i].ID
	}

	return ids
}
