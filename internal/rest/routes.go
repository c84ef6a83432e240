package rest

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	apiPostsPath     = apiV1Prefix + "/posts"
	apiDashboardPath = apiV1Prefix + "/dashboard"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/v1/rpc/"

	// Page paths
	startingPagePath = "/"
	postsPath        = "/posts"
	postDetailPath   = "/posts/:slug"
	readLaterPath    = "/read-later"
	stockIndexPath   = "/stock_index"
	cashFormPath     = "/cash_form_page"
	editCashPath     = "/edit-cash/:id"
	stockFormPath    = "/stock_form_page"
	editStockPath    = "/stock_form_page/:symbol"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = h.renderer
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Use(h.loggingMiddleware)

	h.registerPageRoutes(e)
	h.registerAPIRoutes(e)
	h.registerHealthCheck(e)

	if h.rpc != nil {
		e.Any(rpcPath, echo.WrapHandler(h.rpc))
	}

	return e
}

func (h *Handler) registerPageRoutes(e *echo.Echo) {
	pages := e.Group("", h.sessionMiddleware)

	pages.GET(startingPagePath, h.StartingPage)
	pages.GET(postsPath, h.AllPosts)
	pages.GET(postDetailPath, h.PostDetail)
	pages.POST(postDetailPath, h.PostDetailSubmit)
	pages.GET(readLaterPath, h.ReadLater)
	pages.POST(readLaterPath, h.ReadLaterToggle)

	pages.GET(stockIndexPath, h.StockIndex)
	pages.POST(stockIndexPath, h.StockIndexSubmit)
	pages.GET(cashFormPath, h.CashForm)
	pages.POST(cashFormPath, h.CashFormSubmit)
	pages.GET(editCashPath, h.CashForm)
	pages.POST(editCashPath, h.CashFormSubmit)
	pages.GET(editCashPath+"/", h.CashForm)
	pages.POST(editCashPath+"/", h.CashFormSubmit)
	pages.GET(stockFormPath, h.StockForm)
	pages.POST(stockFormPath, h.StockFormSubmit)
	pages.GET(editStockPath, h.StockForm)
	pages.POST(editStockPath, h.StockFormSubmit)
}

func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	e.GET(apiPostsPath, h.Posts)
	e.GET(apiDashboardPath, h.Dashboard)
	e.GET(swaggerPath, h.SwaggerDoc)
}

func (h *Handler) registerHealthCheck(e *echo.Echo) {
	e.GET(healthPath, h.Health)
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", req.RemoteAddr,
		)

		return nil
	}
}

func isAPIPath(p string) bool {
	return strings.HasPrefix(p, apiV1Prefix) || strings.HasPrefix(p, rpcPath)
}
