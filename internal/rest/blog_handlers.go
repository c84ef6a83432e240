package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/daniilsolovey/my-site/internal/form"
	"github.com/labstack/echo/v4"
)

const allPostsGreeting = "嘿，你好！準備好來閱讀一些有趣的內容嗎？"

// StartingPage handles GET /
func (h *Handler) StartingPage(c echo.Context) error {
	posts, err := h.blog.LatestPosts(c.Request().Context())
	if err != nil {
		return h.pageError(c, err)
	}

	return c.Render(http.StatusOK, "post_index.html", echo.Map{
		"posts": posts,
	})
}

// AllPosts handles GET /posts
func (h *Handler) AllPosts(c echo.Context) error {
	posts, err := h.blog.Posts(c.Request().Context())
	if err != nil {
		return h.pageError(c, err)
	}

	return c.Render(http.StatusOK, "all_posts.html", echo.Map{
		"posts":   posts,
		"message": allPostsGreeting,
	})
}

// PostDetail handles GET /posts/:slug
func (h *Handler) PostDetail(c echo.Context) error {
	return h.renderPostDetail(c, http.StatusOK, form.Comment{}, form.Errors{})
}

// PostDetailSubmit handles POST /posts/:slug. A request carrying the
// comment_form key is a comment, anything else toggles read-later.
func (h *Handler) PostDetailSubmit(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid form")
	}

	slug := c.Param("slug")
	detailURL := "/posts/" + url.PathEscape(slug)

	if !params.Has("comment_form") {
		if _, err := h.blog.ToggleReadLaterBySlug(c.Request().Context(), sessionID(c), slug); err != nil {
			return h.pageError(c, err)
		}
		return c.Redirect(http.StatusFound, detailURL)
	}

	f := form.Comment{
		UserName:  params.Get("user_name"),
		UserEmail: params.Get("user_email"),
		Text:      params.Get("text"),
	}

	comment, errs := f.Validate()
	if !errs.Valid() {
		return h.renderPostDetail(c, http.StatusOK, f, errs)
	}

	if _, err := h.blog.AddComment(c.Request().Context(), slug, comment); err != nil {
		return h.pageError(c, err)
	}

	return c.Redirect(http.StatusFound, detailURL)
}

func (h *Handler) renderPostDetail(c echo.Context, status int, f form.Comment, errs form.Errors) error {
	detail, err := h.blog.PostDetail(c.Request().Context(), c.Param("slug"), sessionID(c))
	if err != nil {
		return h.pageError(c, err)
	}

	return c.Render(status, "post_detail.html", echo.Map{
		"post":            detail.Post,
		"post_tags":       detail.Tags,
		"comments":        detail.Comments,
		"comment_form":    f,
		"errors":          errs,
		"saved_for_later": detail.SavedForLater,
	})
}

// ReadLater handles GET /read-later
func (h *Handler) ReadLater(c echo.Context) error {
	list, err := h.blog.ReadLater(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.pageError(c, err)
	}

	return c.Render(http.StatusOK, "read_later.html", echo.Map{
		"posts":     list.Posts,
		"has_posts": list.HasPosts,
	})
}

// ReadLaterToggle handles POST /read-later
func (h *Handler) ReadLaterToggle(c echo.Context) error {
	postID, err := strconv.Atoi(c.FormValue("post_id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post_id")
	}

	if _, err := h.blog.ToggleReadLater(c.Request().Context(), sessionID(c), postID); err != nil {
		return h.pageError(c, err)
	}

	return c.Redirect(http.StatusFound, startingPagePath)
}
