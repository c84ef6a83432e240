package rest

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/daniilsolovey/my-site/internal/form"
	"github.com/daniilsolovey/my-site/internal/ledger"
	"github.com/labstack/echo/v4"
)

// StockIndex handles GET /stock_index
func (h *Handler) StockIndex(c echo.Context) error {
	dash, err := h.ledger.Dashboard(c.Request().Context())
	if err != nil {
		return h.pageError(c, err)
	}

	return c.Render(http.StatusOK, "stock_index.html", echo.Map{
		"cash_data":         dash.Cashes,
		"stock_data":        dash.Holdings,
		"usd_to_twd_rate":   dash.ExchangeRate,
		"ntd_total":         dash.NtdTotal,
		"usd_total":         dash.UsdTotal,
		"total_cash":        dash.TotalCash,
		"total_stock_value": dash.TotalStockValue,
	})
}

// StockIndexSubmit handles POST /stock_index. delete_cash and edit_cash act on
// the cash row in id; any other post deletes the stocks of stock_id and shows
// the dashboard. A missing stock_id deletes nothing.
func (h *Handler) StockIndexSubmit(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()

	switch {
	case params.Has("delete_cash"):
		cashID, err := strconv.Atoi(params.Get("id"))
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
		if err := h.ledger.DeleteCash(ctx, cashID); err != nil {
			return h.pageError(c, err)
		}
		return c.Redirect(http.StatusFound, stockIndexPath)

	case params.Has("edit_cash"):
		cashID, err := strconv.Atoi(params.Get("id"))
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
		return c.Redirect(http.StatusFound, editCashURL(cashID))

	default:
		if _, err := h.ledger.DeleteStocks(ctx, params.Get("stock_id")); err != nil {
			return h.pageError(c, err)
		}
	}

	return h.StockIndex(c)
}

// CashForm handles GET /cash_form_page and GET /edit-cash/:id
func (h *Handler) CashForm(c echo.Context) error {
	cash, err := h.cashFromPath(c)
	if err != nil {
		return h.pageError(c, err)
	}

	f := form.Cash{}
	if cash != nil {
		f = form.NewCash(cash)
	}

	return h.renderCashForm(c, cash, f, form.Errors{})
}

// CashFormSubmit handles POST /cash_form_page and POST /edit-cash/:id
func (h *Handler) CashFormSubmit(c echo.Context) error {
	cash, err := h.cashFromPath(c)
	if err != nil {
		return h.pageError(c, err)
	}

	var f form.Cash
	if err := c.Bind(&f); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if !errs.Valid() {
		return h.renderCashForm(c, cash, f, errs)
	}

	cashID := 0
	if cash != nil {
		cashID = cash.ID
	}

	if _, err := h.ledger.SaveCash(c.Request().Context(), cashID, input); err != nil {
		return h.pageError(c, err)
	}

	return c.Redirect(http.StatusFound, stockIndexPath)
}

func (h *Handler) renderCashForm(c echo.Context, cash *db.Cash, f form.Cash, errs form.Errors) error {
	action := cashFormPath
	if cash != nil {
		action = editCashURL(cash.ID)
	}

	return c.Render(http.StatusOK, "cash_form_page.html", echo.Map{
		"form":   f,
		"cash":   cash,
		"errors": errs,
		"action": action,
	})
}

// cashFromPath returns the row named by :id, nil on the create page.
func (h *Handler) cashFromPath(c echo.Context) (*db.Cash, error) {
	raw := c.Param("id")
	if raw == "" {
		return nil, nil
	}

	cashID, err := strconv.Atoi(raw)
	if err != nil {
		return nil, db.ErrNotFound
	}

	return h.ledger.CashByID(c.Request().Context(), cashID)
}

// StockForm handles GET /stock_form_page and GET /stock_form_page/:symbol
func (h *Handler) StockForm(c echo.Context) error {
	stock, err := h.stockFromPath(c)
	if err != nil {
		return h.pageError(c, err)
	}

	f := form.Stock{}
	if stock != nil {
		f = form.NewStock(stock)
	}

	return h.renderStockForm(c, stock, f, form.Errors{})
}

// StockFormSubmit handles POST /stock_form_page and POST /stock_form_page/:symbol
func (h *Handler) StockFormSubmit(c echo.Context) error {
	stock, err := h.stockFromPath(c)
	if err != nil {
		return h.pageError(c, err)
	}

	var f form.Stock
	if err := c.Bind(&f); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid form")
	}

	input, errs := f.Validate()
	if !errs.Valid() {
		return h.renderStockForm(c, stock, f, errs)
	}

	_, err = h.ledger.SaveStock(c.Request().Context(), stock, input)
	switch {
	case errors.Is(err, ledger.ErrCountOutOfRange):
		errs.Add("stock_count", "Ensure this value is less than or equal to 2147483647.")
		return h.renderStockForm(c, stock, f, errs)
	case err != nil:
		return h.pageError(c, err)
	}

	return c.Redirect(http.StatusFound, stockIndexPath)
}

func (h *Handler) renderStockForm(c echo.Context, stock *db.Stock, f form.Stock, errs form.Errors) error {
	action := stockFormPath
	if stock != nil {
		action = stockFormPath + "/" + url.PathEscape(stock.StockSymbol)
	}

	return c.Render(http.StatusOK, "stock_form_page.html", echo.Map{
		"form":   f,
		"stock":  stock,
		"errors": errs,
		"action": action,
	})
}

// stockFromPath returns the row named by :symbol, nil on the create page.
func (h *Handler) stockFromPath(c echo.Context) (*db.Stock, error) {
	symbol := c.Param("symbol")
	if symbol == "" {
		return nil, nil
	}

	if unescaped, err := url.PathUnescape(symbol); err == nil {
		symbol = unescaped
	}

	return h.ledger.StockBySymbol(c.Request().Context(), symbol)
}

func editCashURL(cashID int) string {
	return "/edit-cash/" + strconv.Itoa(cashID) + "/"
}
