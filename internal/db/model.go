// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/shopspring/decimal"
)

var Columns = struct {
	Author struct {
		ID, FirstName, LastName, EmailAddress string
	}
	Cash struct {
		ID, Ntd, Usd, Note, Date string
	}
	Comment struct {
		ID, UserName, UserEmail, Text, PostID string

		Post string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Post struct {
		ID, Title, Excerpt, Image, Date, Slug, Content, AuthorID, TagIDs string

		Author string
	}
	Stock struct {
		ID, StockSymbol, StockCount, StockPrice, ProcessingFee, Tax, Date string
	}
	Tag struct {
		ID, Caption string
	}
}{
	Author: struct {
		ID, FirstName, LastName, EmailAddress string
	}{
		ID:           "authorId",
		FirstName:    "firstName",
		LastName:     "lastName",
		EmailAddress: "emailAddress",
	},
	Cash: struct {
		ID, Ntd, Usd, Note, Date string
	}{
		ID:   "cashId",
		Ntd:  "ntd",
		Usd:  "usd",
		Note: "note",
		Date: "date",
	},
	Comment: struct {
		ID, UserName, UserEmail, Text, PostID string

		Post string
	}{
		ID:        "commentId",
		UserName:  "userName",
		UserEmail: "userEmail",
		Text:      "text",
		PostID:    "postId",

		Post: "Post",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Post: struct {
		ID, Title, Excerpt, Image, Date, Slug, Content, AuthorID, TagIDs string

		Author string
	}{
		ID:       "postId",
		Title:    "title",
		Excerpt:  "excerpt",
		Image:    "image",
		Date:     "date",
		Slug:     "slug",
		Content:  "content",
		AuthorID: "authorId",
		TagIDs:   "tagIds",

		Author: "Author",
	},
	Stock: struct {
		ID, StockSymbol, StockCount, StockPrice, ProcessingFee, Tax, Date string
	}{
		ID:            "stockId",
		StockSymbol:   "stockSymbol",
		StockCount:    "stockCount",
		StockPrice:    "stockPrice",
		ProcessingFee: "processingFee",
		Tax:           "tax",
		Date:          "date",
	},
	Tag: struct {
		ID, Caption string
	}{
		ID:      "tagId",
		Caption: "caption",
	},
}

var Tables = struct {
	Author struct {
		Name, Alias string
	}
	Cash struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	Stock struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
}{
	Author: struct {
		Name, Alias string
	}{
		Name:  "authors",
		Alias: "t",
	},
	Cash: struct {
		Name, Alias string
	}{
		Name:  "cashes",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Stock: struct {
		Name, Alias string
	}{
		Name:  "stocks",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID           int    `pg:"authorId,pk"`
	FirstName    string `pg:"firstName,use_zero"`
	LastName     string `pg:"lastName,use_zero"`
	EmailAddress string `pg:"emailAddress,use_zero"`
}

type Cash struct {
	tableName struct{} `pg:"cashes,alias:t,discard_unknown_columns"`

	ID   int             `pg:"cashId,pk"`
	Ntd  int             `pg:"ntd,use_zero"`
	Usd  decimal.Decimal `pg:"usd,type:numeric(10,2),use_zero"`
	Note string          `pg:"note,use_zero"`
	Date time.Time       `pg:"date,type:date,use_zero"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int    `pg:"commentId,pk"`
	UserName  string `pg:"userName,use_zero"`
	UserEmail string `pg:"userEmail,use_zero"`
	Text      string `pg:"text,use_zero"`
	PostID    int    `pg:"postId,use_zero"`

	Post *Post `pg:"fk:postId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID       int       `pg:"postId,pk"`
	Title    string    `pg:"title,use_zero"`
	Excerpt  string    `pg:"excerpt,use_zero"`
	Image    *string   `pg:"image"`
	Date     time.Time `pg:"date,type:date,use_zero"`
	Slug     string    `pg:"slug,use_zero"`
	Content  string    `pg:"content,use_zero"`
	AuthorID *int      `pg:"authorId"`
	TagIDs   []int     `pg:"tagIds,array,use_zero"`

	Author *Author `pg:"fk:authorId,rel:has-one"`
}

type Stock struct {
	tableName struct{} `pg:"stocks,alias:t,discard_unknown_columns"`

	ID            int             `pg:"stockId,pk"`
	StockSymbol   string          `pg:"stockSymbol,use_zero"`
	StockCount    int             `pg:"stockCount,use_zero"`
	StockPrice    decimal.Decimal `pg:"stockPrice,type:numeric(10,2),use_zero"`
	ProcessingFee decimal.Decimal `pg:"processingFee,type:numeric(10,2),use_zero"`
	Tax           decimal.Decimal `pg:"tax,type:numeric(10,2),use_zero"`
	Date          time.Time       `pg:"date,type:date,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID      int    `pg:"tagId,pk"`
	Caption string `pg:"caption,use_zero"`
}
