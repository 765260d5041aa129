package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// pageRender gives every page its own template set so each can define its
// own "content" block inside the shared layout.
type pageRender map[string]*template.Template

func loadPages() (pageRender, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	out := pageRender{}
	for _, p := range pages {
		if p == layoutFile {
			continue
		}
		t, err := template.ParseFS(templateFS, layoutFile, p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		out[p[len("templates/"):]] = t
	}
	return out, nil
}

func (r pageRender) Instance(name string, data any) render.Render {
	return render.HTML{Template: r[name], Name: "layout", Data: data}
}
