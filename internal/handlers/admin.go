// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"digitallink/internal/cache"
	"digitallink/internal/models"
	"digitallink/internal/slug"
	"digitallink/internal/storage"
	"digitallink/internal/store"
)

// Admin groups the catalog administration handlers and their dependencies.
// storageClient and mediaStore may be nil if S3 is not configured.
type Admin struct {
	categoryStore *store.CategoryStore
	subStore      *store.SubCategoryStore
	superSubStore *store.SuperSubCategoryStore
	productStore  *store.ProductStore
	mediaStore    *store.MediaStore
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(categoryStore *store.CategoryStore, subStore *store.SubCategoryStore, superSubStore *store.SuperSubCategoryStore, productStore *store.ProductStore, mediaStore *store.MediaStore, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		categoryStore: categoryStore,
		subStore:      subStore,
		superSubStore: superSubStore,
		productStore:  productStore,
		mediaStore:    mediaStore,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// --- Categories ---

// CategoriesList returns all categories.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.categoryStore.List()
	if err != nil {
		serverError(w, "list categories failed", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CategoryCreate creates a new category.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var p categoryPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	created, err := a.categoryStore.Create(&models.Category{Name: p.Name})
	if err != nil {
		serverError(w, "create category failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CategoryUpdate renames an existing category.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid category id")
		return
	}

	var p categoryPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	ok, err := a.categoryStore.Update(&models.Category{ID: id, Name: p.Name})
	if err != nil {
		serverError(w, "update category failed", err)
		return
	}
	if !ok {
		notFoundError(w, "category not found")
		return
	}

	updated, err := a.categoryStore.FindByID(id)
	if err != nil {
		serverError(w, "reload category failed", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CategoryDelete removes a category. Descendant sub-categories,
// super-sub-categories and products go with it via the schema cascade.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid category id")
		return
	}

	ok, err := a.categoryStore.Delete(id)
	if err != nil {
		serverError(w, "delete category failed", err)
		return
	}
	if !ok {
		notFoundError(w, "category not found")
		return
	}
	a.pageCache.Invalidate(r.Context(), cache.HomepageKey())
	w.WriteHeader(http.StatusNoContent)
}

// --- Sub-categories ---

// SubCategoriesList returns all sub-categories, optionally filtered by
// ?category_id= for cascading admin selects.
func (a *Admin) SubCategoriesList(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.SubCategory
		err   error
	)
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			validationError(w, "invalid category_id filter")
			return
		}
		items, err = a.subStore.ListByCategory(categoryID)
	} else {
		items, err = a.subStore.List()
	}
	if err != nil {
		serverError(w, "list sub-categories failed", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SubCategoryCreate creates a new sub-category under an existing category.
func (a *Admin) SubCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var p subCategoryPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}
	if ok, err := a.categoryExists(p.CategoryID); err != nil {
		serverError(w, "check category failed", err)
		return
	} else if !ok {
		validationError(w, "category_id does not reference an existing category")
		return
	}

	created, err := a.subStore.Create(&models.SubCategory{Name: p.Name, CategoryID: p.CategoryID})
	if err != nil {
		serverError(w, "create sub-category failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// SubCategoryUpdate modifies an existing sub-category, including moving it
// under a different category.
func (a *Admin) SubCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid sub-category id")
		return
	}

	var p subCategoryPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}
	if ok, err := a.categoryExists(p.CategoryID); err != nil {
		serverError(w, "check category failed", err)
		return
	} else if !ok {
		validationError(w, "category_id does not reference an existing category")
		return
	}

	ok, err := a.subStore.Update(&models.SubCategory{ID: id, Name: p.Name, CategoryID: p.CategoryID})
	if err != nil {
		serverError(w, "update sub-category failed", err)
		return
	}
	if !ok {
		notFoundError(w, "sub-category not found")
		return
	}

	updated, err := a.subStore.FindByID(id)
	if err != nil {
		serverError(w, "reload sub-category failed", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SubCategoryDelete removes a sub-category and its super-sub-categories.
func (a *Admin) SubCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid sub-category id")
		return
	}

	ok, err := a.subStore.Delete(id)
	if err != nil {
		serverError(w, "delete sub-category failed", err)
		return
	}
	if !ok {
		notFoundError(w, "sub-category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Super-sub-categories ---

// SuperSubCategoriesList returns all super-sub-categories.
func (a *Admin) SuperSubCategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.superSubStore.List()
	if err != nil {
		serverError(w, "list super-sub-categories failed", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SuperSubCategoryCreate creates a third-level taxonomy entry. An empty
// slug is generated from the name; slugs are unique across the table.
func (a *Admin) SuperSubCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var p superSubCategoryPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	sub, err := a.subStore.FindByID(p.SubCategoryID)
	if err != nil {
		serverError(w, "check sub-category failed", err)
		return
	}
	if sub == nil {
		validationError(w, "sub_category_id does not reference an existing sub-category")
		return
	}

	s := p.Slug
	if s == "" {
		s = slug.Generate(p.Name)
	}
	if s == "" {
		validationError(w, "name produces an empty slug; provide one explicitly")
		return
	}

	if clash, err := a.superSubStore.FindBySlug(s); err != nil {
		serverError(w, "check slug failed", err)
		return
	} else if clash != nil {
		conflictError(w, "slug already in use")
		return
	}

	created, err := a.superSubStore.Create(&models.SuperSubCategory{
		Name:          p.Name,
		Slug:          s,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		SubCategoryID: p.SubCategoryID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			conflictError(w, "slug already in use")
			return
		}
		serverError(w, "create super-sub-category failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// SuperSubCategoryUpdate modifies an existing super-sub-category. A
// replaced image is removed from the bucket once the row is saved.
func (a *Admin) SuperSubCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid super-sub-category id")
		return
	}

	var p superSubCategoryPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	existing, err := a.superSubStore.FindByID(id)
	if err != nil {
		serverError(w, "find super-sub-category failed", err)
		return
	}
	if existing == nil {
		notFoundError(w, "super-sub-category not found")
		return
	}

	sub, err := a.subStore.FindByID(p.SubCategoryID)
	if err != nil {
		serverError(w, "check sub-category failed", err)
		return
	}
	if sub == nil {
		validationError(w, "sub_category_id does not reference an existing sub-category")
		return
	}

	s := p.Slug
	if s == "" {
		s = slug.Generate(p.Name)
	}
	if s == "" {
		validationError(w, "name produces an empty slug; provide one explicitly")
		return
	}

	if clash, err := a.superSubStore.FindBySlug(s); err != nil {
		serverError(w, "check slug failed", err)
		return
	} else if clash != nil && clash.ID != id {
		conflictError(w, "slug already in use")
		return
	}

	ok, err := a.superSubStore.Update(&models.SuperSubCategory{
		ID:            id,
		Name:          p.Name,
		Slug:          s,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		SubCategoryID: p.SubCategoryID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			conflictError(w, "slug already in use")
			return
		}
		serverError(w, "update super-sub-category failed", err)
		return
	}
	if !ok {
		notFoundError(w, "super-sub-category not found")
		return
	}

	if imageReplaced(existing.ImageURL, p.ImageURL) {
		a.removeStoredImage(r.Context(), existing.ImageURL)
	}

	updated, err := a.superSubStore.FindByID(id)
	if err != nil {
		serverError(w, "reload super-sub-category failed", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SuperSubCategoryDelete removes a super-sub-category and its bucket image.
func (a *Admin) SuperSubCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		validationError(w, "invalid super-sub-category id")
		return
	}

	existing, err := a.superSubStore.FindByID(id)
	if err != nil {
		serverError(w, "find super-sub-category failed", err)
		return
	}
	if existing == nil {
		notFoundError(w, "super-sub-category not found")
		return
	}

	ok, err := a.superSubStore.Delete(id)
	if err != nil {
		serverError(w, "delete super-sub-category failed", err)
		return
	}
	if !ok {
		notFoundError(w, "super-sub-category not found")
		return
	}

	a.removeStoredImage(r.Context(), existing.ImageURL)
	w.WriteHeader(http.StatusNoContent)
}

// categoryExists reports whether a category row exists.
func (a *Admin) categoryExists(id uuid.UUID) (bool, error) {
	c, err := a.categoryStore.FindByID(id)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}

// removeStoredImage deletes a replaced or orphaned upload from the bucket.
// Best effort: a failed delete only leaves an unreferenced object behind,
// so it is logged and the request proceeds.
func (a *Admin) removeStoredImage(ctx context.Context, url *string) {
	if a.storageClient == nil || url == nil {
		return
	}
	key, ok := a.storageClient.ExtractKey(*url)
	if !ok {
		return
	}
	if err := a.storageClient.Delete(ctx, key); err != nil {
		slog.Warn("delete stored image failed", "key", key, "error", err)
	}
}

// imageReplaced reports whether old points at an image the updated row no
// longer references.
func imageReplaced(old, updated *string) bool {
	if old == nil {
		return false
	}
	return updated == nil || *updated != *old
}
