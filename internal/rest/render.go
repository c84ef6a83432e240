package rest

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/daniilsolovey/my-site/internal/ledger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const layoutTemplate = "templates/base.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer renders every page inside the base layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"twd": func(d decimal.Decimal) string {
			return ledger.Display(d, ledger.TWD)
		},
		"usd": func(d decimal.Decimal) string {
			return ledger.Display(d, ledger.USD)
		},
		"fixed": func(d decimal.Decimal, places int32) string {
			return d.StringFixed(places)
		},
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"isoDate": func(t time.Time) string {
			return t.Format(time.DateOnly)
		},
	}

	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutTemplate {
			continue
		}

		tmpl, err := template.New(path.Base(file)).Funcs(funcs).ParseFS(templatesFS, layoutTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		r.pages[path.Base(file)] = tmpl
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, "base", data)
}
