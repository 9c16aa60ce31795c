// Package views renders the server side dashboard pages from templates
// embedded in the binary. Engine satisfies fiber.Views.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"shopmonitor/dashboard"
	"shopmonitor/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

// Engine holds one parsed template set per page, each made of the layout
// and the page body.
type Engine struct {
	pages map[string]*template.Template
}

func New() *Engine {
	return &Engine{}
}

// Load parses the layout and every page template.
func (e *Engine) Load() error {
	pages := map[string]*template.Template{}
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return err
	}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		t, err := template.New("layout.html").Funcs(Funcs()).ParseFS(templatesFS, layoutFile, file)
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}
		pages[name] = t
	}
	e.pages = pages
	return nil
}

// Render executes the named page inside the layout. Layout arguments are
// ignored: every page uses the same layout.
func (e *Engine) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	t, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Has reports whether a page template exists.
func (e *Engine) Has(name string) bool {
	_, ok := e.pages[name]
	return ok
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"dollars": dashboard.Dollars,
		"orderID": dashboard.OrderID,
		"orNA": func(s *string) string {
			if s == nil || *s == "" {
				return "N/A"
			}
			return *s
		},
		// discount prints the raw amount, 0 when none was recorded
		"discount": func(inv models.Invoice) string {
			return "$" + strconv.FormatFloat(inv.DiscountOrZero(), 'f', -1, 64)
		},
		"year": func() int { return time.Now().Year() },
	}
}
