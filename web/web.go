package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates
var templateFS embed.FS

const baseTemplate = "templates/base.html"

// Templates holds one parsed set per page, each combined with the base layout.
type Templates struct {
	pages map[string]*template.Template
}

// Load parses every page under templates/. Pages are addressed by their path
// relative to templates/, e.g. "posts/create.html".
func Load() (*Templates, error) {
	base, err := template.ParseFS(templateFS, baseTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}

	t := &Templates{pages: make(map[string]*template.Template)}
	err = fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == baseTemplate || !strings.HasSuffix(path, ".html") {
			return nil
		}

		page, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(templateFS, path); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		t.pages[strings.TrimPrefix(path, "templates/")] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the named page into a buffer and only then writes it, so a
// failing template never leaves a half-written response.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, data any) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
