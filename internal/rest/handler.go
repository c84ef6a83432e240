package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/my-site/internal/blog"
	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/daniilsolovey/my-site/internal/ledger"
	"github.com/labstack/echo/v4"
)

// Pinger is a dependency checked by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	blog     *blog.Manager
	ledger   *ledger.Manager
	log      *slog.Logger
	renderer *Renderer
	rpc      http.Handler
	pingers  map[string]Pinger
	cookie   CookieConfig
}

type Option func(*Handler)

// WithRPC mounts the JSON-RPC server.
func WithRPC(rpc http.Handler) Option {
	return func(h *Handler) {
		h.rpc = rpc
	}
}

// WithPinger adds a dependency to the health check.
func WithPinger(name string, p Pinger) Option {
	return func(h *Handler) {
		h.pingers[name] = p
	}
}

func WithCookie(cfg CookieConfig) Option {
	return func(h *Handler) {
		h.cookie = cfg
	}
}

func NewHandler(blogManager *blog.Manager, ledgerManager *ledger.Manager, log *slog.Logger, opts ...Option) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		blog:     blogManager,
		ledger:   ledgerManager,
		log:      log,
		renderer: renderer,
		pingers:  make(map[string]Pinger),
		cookie:   DefaultCookieConfig(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// pageError renders the not found page for missing rows and a plain 500
// otherwise.
func (h *Handler) pageError(c echo.Context, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return h.notFound(c, "No matching record.")
	}

	h.log.Error("pageError", "error", err, "path", c.Request().URL.Path)
	return c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (h *Handler) notFound(c echo.Context, message string) error {
	return c.Render(http.StatusNotFound, "404.html", echo.Map{"message": message})
}

// httpErrorHandler renders routing errors: JSON for the API, pages elsewhere.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		h.log.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
	}

	var rerr error
	switch {
	case isAPIPath(c.Request().URL.Path):
		rerr = c.JSON(code, map[string]string{"error": http.StatusText(code)})
	case code == http.StatusNotFound:
		rerr = h.notFound(c, "")
	default:
		rerr = c.String(code, http.StatusText(code))
	}

	if rerr != nil {
		h.log.Error("failed to write error response", "error", rerr)
	}
}
