package handler

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type indexPage struct {
	PageTitle string
	Links     []linkRow
	CSRFToken string
}

type linkRow struct {
	domain.Link
	DeleteURL string
}

func newLinkRows(links []domain.Link, csrfToken string) []linkRow {
	rows := make([]linkRow, len(links))
	for i, link := range links {
		deleteURL := "/delete/" + strconv.FormatInt(link.ID, 10)
		if csrfToken != "" {
			deleteURL += "?" + url.Values{csrfField: {csrfToken}}.Encode()
		}
		rows[i] = linkRow{Link: link, DeleteURL: deleteURL}
	}
	return rows
}

type editPage struct {
	PageTitle string
	Link      domain.Link
	CSRFToken string
}

// Templates holds one parsed set per page, each sharing the layout.
type Templates struct {
	pages map[string]*template.Template
}

func ParseTemplates() (*Templates, error) {
	t := &Templates{pages: map[string]*template.Template{}}
	for _, page := range []string{"index.html", "edit.html"} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, err
		}
		t.pages[page] = tmpl
	}
	return t, nil
}

// Render buffers the page; nothing reaches w when execution fails.
func (t *Templates) Render(w http.ResponseWriter, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fs.ErrNotExist
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func staticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(staticFiles())))
}

// rootAsset serves a single static file from the site root, where older
// pages still look for it.
func rootAsset(name string) http.HandlerFunc {
	files := staticFiles()
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, files, name)
	}
}
