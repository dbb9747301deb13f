package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"shippix/internal/adapters/in/http/chrome"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templates embed.FS

// Page is the data every page template is executed with.
type Page struct {
	Title  string
	Chrome chrome.Chrome
	Data   any
}

// Renderer executes one template set per page. Each set is the shared layout
// plus the page file, so every page can define its own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templates, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.New(name).ParseFS(templates, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q is not defined", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func (s *Server) render(c echo.Context, code int, name, title string, data any) error {
	return c.Render(code, name, Page{
		Title:  title,
		Chrome: chrome.Select(c.Request().URL.Path),
		Data:   data,
	})
}
