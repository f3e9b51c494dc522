package main

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/myrjola/trackmate/internal/errors"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"mdToHTML": func(string) template.HTML { panic("not implemented") },
}).ParseFS(templateFS, "templates/*.gohtml"))

// renderMarkdownToHTML converts trusted catalog Markdown to HTML. Raw HTML in the source is not passed through.
func (app *application) renderMarkdownToHTML(ctx context.Context, markdown string) template.HTML {
	var buf bytes.Buffer
	if err := app.markdown.Convert([]byte(markdown), &buf); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "render markdown", errors.SlogError(err))
		return template.HTML(template.HTMLEscapeString(markdown)) //nolint:gosec // escaped above.
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark omits raw HTML by default.
}

// render executes the named template into a buffer first so that a failing template still yields a clean 500.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, err := templates.Clone()
	if err != nil {
		app.serverError(w, r, fmt.Errorf("clone templates: %w", err))
		return
	}
	t.Funcs(template.FuncMap{
		"mdToHTML": func(markdown string) template.HTML {
			return app.renderMarkdownToHTML(r.Context(), markdown)
		},
	})
	var buf bytes.Buffer
	if err = t.ExecuteTemplate(&buf, name, data); err != nil {
		app.serverError(w, r, fmt.Errorf("execute template %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
