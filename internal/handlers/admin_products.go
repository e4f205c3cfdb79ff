// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"digitallink/internal/cache"
	"digitallink/internal/catalog"
	"digitallink/internal/models"
	"digitallink/internal/slug"
)

// ProductsList returns all products, newest first.
func (a *Admin) ProductsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.productStore.List()
	if err != nil {
		serverError(w, "list products failed", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ProductGet returns a single product by id.
func (a *Admin) ProductGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid product id")
		return
	}

	p, err := a.productStore.FindByID(id)
	if err != nil {
		serverError(w, "find product failed", err)
		return
	}
	if p == nil {
		notFoundError(w, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ProductCreate creates a new product. The taxonomy references must form a
// consistent parent chain; an empty slug is generated from the name and an
// empty status defaults to active.
func (a *Admin) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var p productPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}
	if !a.validateTaxonomy(w, &p) {
		return
	}

	product, msg := p.toModel()
	if msg != "" {
		validationError(w, msg)
		return
	}

	created, err := a.productStore.Create(product)
	if err != nil {
		if isUniqueViolation(err) {
			conflictError(w, "slug already in use")
			return
		}
		serverError(w, "create product failed", err)
		return
	}

	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	writeJSON(w, http.StatusCreated, created)
}

// ProductUpdate modifies an existing product under the same taxonomy rules
// as creation. A replaced image is removed from the bucket once the row is
// saved.
func (a *Admin) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid product id")
		return
	}

	var p productPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	existing, err := a.productStore.FindByID(id)
	if err != nil {
		serverError(w, "find product failed", err)
		return
	}
	if existing == nil {
		notFoundError(w, "product not found")
		return
	}

	if !a.validateTaxonomy(w, &p) {
		return
	}

	product, msg := p.toModel()
	if msg != "" {
		validationError(w, msg)
		return
	}
	product.ID = id

	ok, err := a.productStore.Update(product)
	if err != nil {
		if isUniqueViolation(err) {
			conflictError(w, "slug already in use")
			return
		}
		serverError(w, "update product failed", err)
		return
	}
	if !ok {
		notFoundError(w, "product not found")
		return
	}

	if imageReplaced(existing.ImageURL, p.ImageURL) {
		a.removeStoredImage(r.Context(), existing.ImageURL)
	}

	updated, err := a.productStore.FindByID(id)
	if err != nil {
		serverError(w, "reload product failed", err)
		return
	}

	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	writeJSON(w, http.StatusOK, updated)
}

// ProductDelete removes a product and its bucket image.
func (a *Admin) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid product id")
		return
	}

	existing, err := a.productStore.FindByID(id)
	if err != nil {
		serverError(w, "find product failed", err)
		return
	}
	if existing == nil {
		notFoundError(w, "product not found")
		return
	}

	ok, err := a.productStore.Delete(id)
	if err != nil {
		serverError(w, "delete product failed", err)
		return
	}
	if !ok {
		notFoundError(w, "product not found")
		return
	}

	a.removeStoredImage(r.Context(), existing.ImageURL)
	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	w.WriteHeader(http.StatusNoContent)
}

// validateTaxonomy checks the payload's category chain against the current
// taxonomy. Writes the error response and returns false on failure.
func (a *Admin) validateTaxonomy(w http.ResponseWriter, p *productPayload) bool {
	if ok, err := a.categoryExists(p.CategoryID); err != nil {
		serverError(w, "check category failed", err)
		return false
	} else if !ok {
		validationError(w, "category_id does not reference an existing category")
		return false
	}

	if p.SubCategoryID == nil && p.SuperSubCategoryID == nil {
		return true
	}

	// Snapshot the taxonomy parent chains for chain validation.
	subs, err := a.subStore.List()
	if err != nil {
		serverError(w, "list sub-categories failed", err)
		return false
	}
	supers, err := a.superSubStore.List()
	if err != nil {
		serverError(w, "list super-sub-categories failed", err)
		return false
	}

	h := catalog.NewHierarchy(subs, supers)
	if err := h.ValidateChain(p.CategoryID, p.SubCategoryID, p.SuperSubCategoryID); err != nil {
		validationError(w, taxonomyErrorMessage(err))
		return false
	}
	return true
}

// taxonomyErrorMessage maps catalog chain errors to client-facing text.
func taxonomyErrorMessage(err error) string {
	switch {
	case errors.Is(err, catalog.ErrUnknownSubCategory):
		return "sub_category_id does not reference an existing sub-category"
	case errors.Is(err, catalog.ErrUnknownSuperSub):
		return "super_sub_category_id does not reference an existing super-sub-category"
	case errors.Is(err, catalog.ErrNoSubCategory):
		return "super_sub_category_id requires sub_category_id to be set"
	case errors.Is(err, catalog.ErrSubCategoryMismatch):
		return "sub_category_id does not belong to category_id"
	case errors.Is(err, catalog.ErrSuperSubMismatch):
		return "super_sub_category_id does not belong to sub_category_id"
	}
	return err.Error()
}

// toModel converts a validated payload into a Product, applying the slug
// and status defaults. Returns a non-empty message when defaults cannot be
// derived.
func (p *productPayload) toModel() (*models.Product, string) {
	s := p.Slug
	if s == "" {
		s = slug.Generate(p.Name)
	}
	if s == "" {
		return nil, "name produces an empty slug; provide one explicitly"
	}

	status := p.Status
	if status == "" {
		status = models.ProductActive
	}

	return &models.Product{
		Name:               p.Name,
		Slug:               s,
		Description:        p.Description,
		Price:              p.Price,
		Stock:              p.Stock,
		Status:             status,
		IsFeatured:         p.IsFeatured,
		ImageURL:           p.ImageURL,
		CategoryID:         p.CategoryID,
		SubCategoryID:      p.SubCategoryID,
		SuperSubCategoryID: p.SuperSubCategoryID,
	}, ""
}
