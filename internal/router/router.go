// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Digitallink server. Routes split into the JSON admin API, the public
// enquiry endpoints, and the HTML marketing pages.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"digitallink/internal/handlers"
	"digitallink/internal/middleware"
)

// enquiryRateLimit caps public form submissions per client IP.
const (
	enquiryRateLimit  = 10
	enquiryRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(admin *handlers.Admin, public *handlers.Public, enquiries *handlers.Enquiries, health *handlers.Health) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)

	// Prometheus scrape endpoint.
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health/database", health.Database)

		// Catalog administration. Authentication is terminated upstream
		// (reverse proxy); these routes are not exposed publicly.
		r.Route("/admin", func(r chi.Router) {
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.CategoriesList)
				r.Post("/", admin.CategoryCreate)
				r.Put("/{id}", admin.CategoryUpdate)
				r.Delete("/{id}", admin.CategoryDelete)
			})

			r.Route("/sub-categories", func(r chi.Router) {
				r.Get("/", admin.SubCategoriesList)
				r.Post("/", admin.SubCategoryCreate)
				r.Put("/{id}", admin.SubCategoryUpdate)
				r.Delete("/{id}", admin.SubCategoryDelete)
			})

			r.Route("/super-sub-categories", func(r chi.Router) {
				r.Get("/", admin.SuperSubCategoriesList)
				r.Post("/", admin.SuperSubCategoryCreate)
				r.Put("/{id}", admin.SuperSubCategoryUpdate)
				r.Delete("/{id}", admin.SuperSubCategoryDelete)
			})

			r.Get("/contact-enquiries", enquiries.ContactsList)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", admin.ProductsList)
				r.Post("/", admin.ProductCreate)
				r.Get("/{id}", admin.ProductGet)
				r.Put("/{id}", admin.ProductUpdate)
				r.Delete("/{id}", admin.ProductDelete)
			})
		})

		r.Post("/upload", admin.Upload)

		// Public form endpoints — rate limited per client IP.
		limiter := middleware.NewRateLimiter(enquiryRateLimit, enquiryRateWindow)
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/auth/contact", enquiries.ContactCreate)
			r.Post("/newsletter-enquiries", enquiries.NewsletterCreate)
		})
	})

	// Public HTML pages.
	r.Get("/", public.Home)
	r.Get("/blog", public.BlogIndex)
	r.Get("/blog/{slug}", public.BlogDetail)

	return r
}
