// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"digitallink/internal/cache"
	"digitallink/internal/content"
	"digitallink/internal/render"
	"digitallink/internal/store"
)

const (
	// homeFeaturedLimit is how many featured products the homepage shows.
	homeFeaturedLimit = 3

	// homeRecentArticles is how many insights the homepage links.
	homeRecentArticles = 3

	// relatedArticleLimit is how many related articles a blog page shows.
	relatedArticleLimit = 3
)

// Public serves the HTML pages of the marketing site. Rendered pages are
// stored in the page cache; product mutations invalidate the homepage.
type Public struct {
	renderer     *render.Renderer
	articles     *content.Set
	productStore *store.ProductStore
	pageCache    *cache.PageCache
}

// NewPublic creates a Public handler group.
func NewPublic(renderer *render.Renderer, articles *content.Set, productStore *store.ProductStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:     renderer,
		articles:     articles,
		productStore: productStore,
		pageCache:    pageCache,
	}
}

// Home renders the homepage with featured products and recent insights.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if html, ok := p.pageCache.Get(ctx, cache.HomepageKey()); ok {
		writeHTML(w, html)
		return
	}

	featured, err := p.productStore.ListFeatured(homeFeaturedLimit)
	if err != nil {
		slog.Error("list featured products failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	recent := p.articles.All()
	if len(recent) > homeRecentArticles {
		recent = recent[:homeRecentArticles]
	}

	html, err := p.renderer.Render("home", &render.HomeData{
		FeaturedProducts: featured,
		RecentArticles:   recent,
	})
	if err != nil {
		slog.Error("render homepage failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.HomepageKey(), html)
	writeHTML(w, html)
}

// BlogIndex renders the insights listing page.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if html, ok := p.pageCache.Get(ctx, cache.BlogIndexKey()); ok {
		writeHTML(w, html)
		return
	}

	html, err := p.renderer.Render("blog_list", &render.BlogIndexData{
		Articles: p.articles.All(),
	})
	if err != nil {
		slog.Error("render blog index failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.BlogIndexKey(), html)
	writeHTML(w, html)
}

// BlogDetail renders a single article with its parsed content blocks and
// a randomized related-articles strip. Unknown slugs 404.
func (p *Public) BlogDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article := p.articles.FindBySlug(slug)
	if article == nil {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	if html, ok := p.pageCache.Get(ctx, cache.ArticleKey(slug)); ok {
		writeHTML(w, html)
		return
	}

	html, err := p.renderer.Render("blog_detail", &render.ArticleData{
		Article: article,
		Blocks:  render.BuildBlockViews(article.FullContent),
		Related: p.articles.Related(slug, relatedArticleLimit, nil),
	})
	if err != nil {
		slog.Error("render blog detail failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.ArticleKey(slug), html)
	writeHTML(w, html)
}

// writeHTML writes a rendered page to the client.
func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(html); err != nil {
		slog.Debug("write html response failed", "error", err)
	}
}
