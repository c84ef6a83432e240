package form

import (
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		f := Comment{UserName: " reader ", UserEmail: "reader@example.com", Text: "Nice post"}
		comment, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		assert.Equal(t, "reader", comment.UserName)
		assert.Equal(t, "reader@example.com", comment.UserEmail)
		assert.Zero(t, comment.PostID)
	})

	t.Run("MissingFieldsKeepInput", func(t *testing.T) {
		f := Comment{UserName: "reader", UserEmail: "not-an-email"}
		_, errs := f.Validate()
		require.False(t, errs.Valid())
		assert.True(t, errs.Has("user_email"))
		assert.True(t, errs.Has("text"))
		assert.False(t, errs.Has("user_name"))
		assert.Equal(t, "not-an-email", f.UserEmail)
	})

	t.Run("TooLong", func(t *testing.T) {
		f := Comment{
			UserName:  strings.Repeat("a", 51),
			UserEmail: "a@example.com",
			Text:      strings.Repeat("b", 501),
		}
		_, errs := f.Validate()
		assert.True(t, errs.Has("user_name"))
		assert.True(t, errs.Has("text"))
		assert.Contains(t, errs.Get("text")[0], "500")
	})
}

func TestPost_Validate(t *testing.T) {
	base := func() Post {
		return Post{
			Title:   "Hello World",
			Excerpt: "first",
			Slug:    "hello-world",
			Content: "1234567890",
		}
	}

	t.Run("ContentOfTenIsAccepted", func(t *testing.T) {
		f := base()
		post, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		assert.Equal(t, "hello-world", post.Slug)
		assert.Nil(t, post.Image)
		assert.Nil(t, post.AuthorID)
		assert.Empty(t, post.TagIDs)
	})

	t.Run("ContentOfNineIsRejected", func(t *testing.T) {
		f := base()
		f.Content = "123456789"
		_, errs := f.Validate()
		assert.True(t, errs.Has("content"))
	})

	t.Run("SlugDerivedFromTitle", func(t *testing.T) {
		f := base()
		f.Slug = ""
		f.Title = "My First Trip"
		post, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		assert.Equal(t, "my-first-trip", post.Slug)
	})

	t.Run("PaddedShortContentIsRejected", func(t *testing.T) {
		f := base()
		f.Content = "  短短短短短短短短  "
		_, errs := f.Validate()
		assert.True(t, errs.Has("content"))
		assert.Equal(t, "短短短短短短短短", f.Content)
	})

	t.Run("InvalidSlug", func(t *testing.T) {
		f := base()
		f.Slug = "hello world!"
		_, errs := f.Validate()
		assert.True(t, errs.Has("slug"))
	})

	t.Run("AuthorAndTags", func(t *testing.T) {
		f := base()
		f.AuthorID = "2"
		f.TagIDs = []string{"3", "1", "3"}
		f.Image = "posts/a.png"
		post, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		require.NotNil(t, post.AuthorID)
		assert.Equal(t, 2, *post.AuthorID)
		assert.Equal(t, []int{3, 1}, post.TagIDs)
		require.NotNil(t, post.Image)
		assert.Equal(t, "posts/a.png", *post.Image)
	})

	t.Run("BadTagID", func(t *testing.T) {
		f := base()
		f.TagIDs = []string{"x"}
		_, errs := f.Validate()
		assert.False(t, errs.Valid())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		authorID := 1
		f := NewPost(&db.Post{Title: "T", Excerpt: "E", Slug: "t", Content: "long enough", AuthorID: &authorID, TagIDs: []int{4}})
		assert.Equal(t, "1", f.AuthorID)
		assert.Equal(t, []string{"4"}, f.TagIDs)
	})
}

func TestAuthorAndTag_Validate(t *testing.T) {
	a := Author{FirstName: "Ada", LastName: "Lin", EmailAddress: "ada@example.com"}
	author, errs := a.Validate()
	require.True(t, errs.Valid(), errs.Error())
	assert.Equal(t, "Lin", author.LastName)

	bad := Author{FirstName: "Ada"}
	_, errs = bad.Validate()
	assert.True(t, errs.Has("last_name"))
	assert.True(t, errs.Has("email_address"))

	tag := Tag{Caption: strings.Repeat("x", 21)}
	_, errs = tag.Validate()
	assert.True(t, errs.Has("caption"))
}

func TestCash_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		f := Cash{Ntd: "1000", Usd: "12.5", Note: "wallet", Date: "2024-01-14"}
		cash, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		assert.Equal(t, 1000, cash.Ntd)
		assert.True(t, cash.Usd.Equal(decimal.RequireFromString("12.50")))
		assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), cash.Date)
	})

	t.Run("EmptyUsdIsZero", func(t *testing.T) {
		f := Cash{Ntd: "-5", Note: "fix", Date: "2024-01-14"}
		cash, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		assert.Equal(t, -5, cash.Ntd)
		assert.True(t, cash.Usd.IsZero())
	})

	t.Run("Invalid", func(t *testing.T) {
		f := Cash{Ntd: "1.5", Usd: "1.234", Note: strings.Repeat("n", 51), Date: "14/01/2024"}
		_, errs := f.Validate()
		assert.True(t, errs.Has("ntd"))
		assert.True(t, errs.Has("usd"))
		assert.True(t, errs.Has("note"))
		assert.True(t, errs.Has("date"))
	})

	t.Run("OutOfIntegerRange", func(t *testing.T) {
		f := Cash{Ntd: "3000000000", Note: "too much", Date: "2024-01-14"}
		_, errs := f.Validate()
		require.True(t, errs.Has("ntd"))
		assert.Equal(t, "Ensure this value is less than or equal to 2147483647.", errs.Get("ntd")[0])
		assert.Equal(t, "3000000000", f.Ntd)

		f = Cash{Ntd: "-2147483649", Note: "too little", Date: "2024-01-14"}
		_, errs = f.Validate()
		require.True(t, errs.Has("ntd"))
		assert.Equal(t, "Ensure this value is greater than or equal to -2147483648.", errs.Get("ntd")[0])

		f = Cash{Ntd: "2147483647", Note: "max", Date: "2024-01-14"}
		cash, errs := f.Validate()
		require.True(t, errs.Valid(), errs.Error())
		assert.Equal(t, 2147483647, cash.Ntd)
	})

	t.Run("Prefill", func(t *testing.T) {
		f := NewCash(&db.Cash{Ntd: 7, Usd: decimal.NewFromInt(3), Note: "n", Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)})
		assert.Equal(t, Cash{Ntd: "7", Usd: "3.00", Note: "n", Date: "2024-02-03"}, f)
	})
}

func TestStock_Validate(t *testing.T) {
	f := Stock{StockSymbol: "2330", StockCount: "50", StockPrice: "550.00", ProcessingFee: "10", Date: "2024-01-14"}
	stock, errs := f.Validate()
	require.True(t, errs.Valid(), errs.Error())
	assert.Equal(t, "2330", stock.StockSymbol)
	assert.Equal(t, 50, stock.StockCount)
	assert.True(t, stock.StockPrice.Equal(decimal.NewFromInt(550)))
	assert.True(t, stock.ProcessingFee.Equal(decimal.NewFromInt(10)))
	assert.True(t, stock.Tax.IsZero())

	huge := Stock{StockSymbol: "2330", StockCount: "99999999999", StockPrice: "1", Date: "2024-01-14"}
	_, errs = huge.Validate()
	require.True(t, errs.Has("stock_count"))
	assert.Contains(t, errs.Get("stock_count")[0], "2147483647")

	notNumber := Stock{StockSymbol: "2330", StockCount: "ten", StockPrice: "1", Date: "2024-01-14"}
	_, errs = notNumber.Validate()
	assert.Equal(t, []string{"Enter a whole number."}, errs.Get("stock_count"))

	missing := Stock{}
	_, errs = missing.Validate()
	for _, field := range []string{"stock_symbol", "stock_count", "stock_price", "date"} {
		assert.True(t, errs.Has(field), field)
	}
	assert.False(t, errs.Has("processing_fee"))
	assert.False(t, errs.Has("tax"))
}

func TestValidMoney(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"12345678.99", true},
		{"123456789", false},
		{"-10.5", true},
		{"1.234", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validMoney(tt.in), tt.in)
	}
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{}
	errs.Add("text", "too long")
	errs.Add("note", "required")
	assert.Equal(t, "note: required; text: too long", errs.Error())
}
