package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/daniilsolovey/my-site/internal/form"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const healthTimeout = 2 * time.Second

// Posts handles GET /api/v1/posts
// @Summary List posts
// @Description Admin listing ordered by date ASC with optional title, author and date filters
// @Tags posts
// @Produce json
// @Param title query string false "Title substring"
// @Param author_id query int false "Author ID"
// @Param date query string false "Creation date, YYYY-MM-DD"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {array} rest.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	ctx := c.Request().Context()

	var req PostsRequest
	if err := urlstruct.Unmarshal(ctx, c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filter := db.PostFilter{
		Title:  req.Title,
		Limit:  req.GetLimit(),
		Offset: req.GetOffset(),
	}

	if req.AuthorID != 0 {
		filter.AuthorID = &req.AuthorID
	}

	if req.Date != "" {
		date, err := time.Parse(form.DateLayout, req.Date)
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid date")
		}
		filter.Date = &date
	}

	posts, err := h.blog.PostsByFilter(ctx, filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(posts, NewPost))
}

// Dashboard handles GET /api/v1/dashboard
// @Summary Ledger valuation
// @Description Cash and stock rows valued with the live exchange rate and closing prices
// @Tags ledger
// @Produce json
// @Success 200 {object} ledger.Dashboard
// @Failure 500 {object} map[string]string
// @Router /api/v1/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	dash, err := h.ledger.Dashboard(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, dash)
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	status := map[string]string{"status": "ok"}
	code := http.StatusOK
	for name, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			h.log.Error("health check failed", "dependency", name, "error", err)
			status[name] = "unavailable"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		status[name] = "ok"
	}

	return c.JSON(code, status)
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
