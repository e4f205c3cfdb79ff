// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Pages render to a byte slice so the result can be stored in the page
// cache before being written to the client.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"digitallink/internal/content"
	"digitallink/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates are the page files paired with the base layout.
var pageTemplates = []string{"home", "blog_list", "blog_detail"}

// BlockView is a content block prepared for template rendering. Boundary
// marks the last paragraph before the next heading, which gets a closing
// emphasis treatment.
type BlockView struct {
	Kind     content.BlockKind
	Text     string
	Boundary bool
}

// BuildBlockViews parses an article body and annotates each block with the
// boundary-paragraph flag.
func BuildBlockViews(raw string) []BlockView {
	blocks := content.ParseBlocks(raw)
	views := make([]BlockView, len(blocks))
	for i, b := range blocks {
		views[i] = BlockView{
			Kind:     b.Kind,
			Text:     b.Text,
			Boundary: content.IsBoundaryParagraph(blocks, i),
		}
	}
	return views
}

// HomeData feeds the homepage template.
type HomeData struct {
	FeaturedProducts []models.Product
	RecentArticles   []content.Article
}

// BlogIndexData feeds the blog index template.
type BlogIndexData struct {
	Articles []content.Article
}

// ArticleData feeds the blog detail template.
type ArticleData struct {
	Article *content.Article
	Blocks  []BlockView
	Related []content.Article
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing the embedded templates. Each page
// template is paired with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// publishDate formats an article date for display.
		"publishDate": func(t time.Time) string {
			return t.Format("2 January 2006")
		},
		// deref safely dereferences a string pointer for use in templates.
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		// bhd formats a price in Bahraini dinars (three decimal places).
		"bhd": func(v float64) string {
			return fmt.Sprintf("BHD %.3f", v)
		},
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range pageTemplates {
		t, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Render executes the named page template and returns the resulting HTML.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
