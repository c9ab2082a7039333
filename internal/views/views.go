package views

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

// DefaultLayout wraps every page.
const DefaultLayout = "layouts/main"

//go:embed templates
var templatesFS embed.FS

// Map is the binding passed to a template.
type Map map[string]any

// Renderer renders the embedded page templates inside the main layout.
type Renderer struct {
	engine *html.Engine
	layout string
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")

	engine.AddFunc("join", strings.Join)
	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("Jan 02, 2006")
	})
	engine.AddFunc("formatDateTime", func(t time.Time) string {
		return t.Format("Jan 02, 2006 15:04")
	})
	engine.AddFunc("isoDate", func(t time.Time) string {
		return t.Format("2006-01-02")
	})

	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	return &Renderer{engine: engine, layout: DefaultLayout}, nil
}

// Render writes the named page wrapped in the layout.
func (r *Renderer) Render(w io.Writer, name string, data Map) error {
	return r.engine.Render(w, name, data, r.layout)
}
