// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"digitallink/internal/models"
)

// postJSON builds a POST request with a JSON body.
func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// putJSON builds a PUT request with a JSON body and an {id} URL param.
func putJSON(target, id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return withChiURLParam(req, "id", id)
}

func TestCategoriesList_EmptyReturnsArray(t *testing.T) {
	env := newTestEnv(t)
	cleanCatalog(t, env.DB)

	rec := httptest.NewRecorder()
	env.Admin.CategoriesList(rec, httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("CategoriesList: got status %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty list: got body %q, want []", body)
	}
}

func TestCategoryCreate_MissingName_ReturnsValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.CategoryCreate(rec, postJSON("/api/admin/categories", `{"name":""}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp apiError
	decodeBody(t, rec, &resp)
	if resp.Kind != KindValidation {
		t.Errorf("got kind %q, want %q", resp.Kind, KindValidation)
	}
}

func TestCategoryUpdate_UnknownID_Returns404(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.CategoryUpdate(rec, putJSON("/api/admin/categories/x", uuid.New().String(), `{"name":"Ghost"}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusNotFound)
	}
	var resp apiError
	decodeBody(t, rec, &resp)
	if resp.Kind != KindNotFound {
		t.Errorf("got kind %q, want %q", resp.Kind, KindNotFound)
	}
}

func TestCategoryDelete_UnknownID_Returns404(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/x", nil)
	rec := httptest.NewRecorder()
	env.Admin.CategoryDelete(rec, withChiURLParam(req, "id", uuid.New().String()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSubCategoryCreate_UnknownParent_ReturnsValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.SubCategoryCreate(rec, postJSON("/api/admin/sub-categories",
		`{"name":"Orphan","category_id":"`+uuid.New().String()+`"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// TestCatalogCRUD_FullScenario drives the three taxonomy tiers and a
// product through the whole admin flow: create the chain, attach a
// product, reject inconsistent chains, update, and delete.
func TestCatalogCRUD_FullScenario(t *testing.T) {
	env := newTestEnv(t)
	cleanCatalog(t, env.DB)
	t.Cleanup(func() { cleanCatalog(t, env.DB) })

	// Category.
	rec := httptest.NewRecorder()
	env.Admin.CategoryCreate(rec, postJSON("/api/admin/categories", `{"name":"Security Systems"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("CategoryCreate: got status %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}
	var category models.Category
	decodeBody(t, rec, &category)

	// Sub-category under it.
	rec = httptest.NewRecorder()
	env.Admin.SubCategoryCreate(rec, postJSON("/api/admin/sub-categories",
		`{"name":"CCTV","category_id":"`+category.ID.String()+`"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("SubCategoryCreate: got status %d: %s", rec.Code, rec.Body)
	}
	var sub models.SubCategory
	decodeBody(t, rec, &sub)

	// Super-sub-category with a generated slug.
	rec = httptest.NewRecorder()
	env.Admin.SuperSubCategoryCreate(rec, postJSON("/api/admin/super-sub-categories",
		`{"name":"IP Cameras!!","sub_category_id":"`+sub.ID.String()+`"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("SuperSubCategoryCreate: got status %d: %s", rec.Code, rec.Body)
	}
	var superSub models.SuperSubCategory
	decodeBody(t, rec, &superSub)
	if superSub.Slug != "ip-cameras" {
		t.Errorf("generated slug = %q, want %q", superSub.Slug, "ip-cameras")
	}

	// Duplicate super-sub slug conflicts.
	rec = httptest.NewRecorder()
	env.Admin.SuperSubCategoryCreate(rec, postJSON("/api/admin/super-sub-categories",
		`{"name":"Other","slug":"ip-cameras","sub_category_id":"`+sub.ID.String()+`"}`))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate slug: got status %d, want %d", rec.Code, http.StatusConflict)
	}

	// Product attached to the full chain. Slug and status are defaulted.
	rec = httptest.NewRecorder()
	env.Admin.ProductCreate(rec, postJSON("/api/admin/products",
		`{"name":"Pro Max Camera Kit!!","price":129.900,"stock":5,"is_featured":true,
		  "image_url":"https://cdn.example.com/uploads/kit.jpg",
		  "category_id":"`+category.ID.String()+`",
		  "sub_category_id":"`+sub.ID.String()+`",
		  "super_sub_category_id":"`+superSub.ID.String()+`"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("ProductCreate: got status %d: %s", rec.Code, rec.Body)
	}
	var product models.Product
	decodeBody(t, rec, &product)
	if product.Slug != "pro-max-camera-kit" {
		t.Errorf("product slug = %q, want %q", product.Slug, "pro-max-camera-kit")
	}
	if product.Status != models.ProductActive {
		t.Errorf("product status = %q, want %q", product.Status, models.ProductActive)
	}

	// A super-sub without its sub-category is inconsistent.
	rec = httptest.NewRecorder()
	env.Admin.ProductCreate(rec, postJSON("/api/admin/products",
		`{"name":"Broken Chain","price":1,"category_id":"`+category.ID.String()+`",
		  "super_sub_category_id":"`+superSub.ID.String()+`"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("broken chain: got status %d, want %d: %s", rec.Code, http.StatusBadRequest, rec.Body)
	}
	var resp apiError
	decodeBody(t, rec, &resp)
	if resp.Kind != KindValidation {
		t.Errorf("broken chain: got kind %q, want %q", resp.Kind, KindValidation)
	}

	// Negative price rejected.
	rec = httptest.NewRecorder()
	env.Admin.ProductCreate(rec, postJSON("/api/admin/products",
		`{"name":"Cheap","price":-1,"category_id":"`+category.ID.String()+`"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative price: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Update drops the taxonomy references below the category and the
	// image; the replaced image cleanup is a no-op without storage.
	rec = httptest.NewRecorder()
	env.Admin.ProductUpdate(rec, putJSON("/api/admin/products/x", product.ID.String(),
		`{"name":"Pro Max Camera Kit","slug":"pro-max-camera-kit","price":119.900,"stock":4,
		  "status":"out_of_stock","category_id":"`+category.ID.String()+`"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("ProductUpdate: got status %d: %s", rec.Code, rec.Body)
	}
	var updated models.Product
	decodeBody(t, rec, &updated)
	if updated.SubCategoryID != nil || updated.SuperSubCategoryID != nil {
		t.Error("update should clear sub and super-sub references")
	}
	if updated.Status != models.ProductOutOfStock {
		t.Errorf("updated status = %q, want %q", updated.Status, models.ProductOutOfStock)
	}

	// Fetch by id.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/products/x", nil)
	rec = httptest.NewRecorder()
	env.Admin.ProductGet(rec, withChiURLParam(req, "id", product.ID.String()))
	if rec.Code != http.StatusOK {
		t.Fatalf("ProductGet: got status %d", rec.Code)
	}

	// Delete, then a second delete 404s.
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/products/x", nil)
	rec = httptest.NewRecorder()
	env.Admin.ProductDelete(rec, withChiURLParam(req, "id", product.ID.String()))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("ProductDelete: got status %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/products/x", nil)
	rec = httptest.NewRecorder()
	env.Admin.ProductDelete(rec, withChiURLParam(req, "id", product.ID.String()))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeated ProductDelete: got status %d, want %d", rec.Code, http.StatusNotFound)
	}

	// Deleting the category cascades the taxonomy away.
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/categories/x", nil)
	rec = httptest.NewRecorder()
	env.Admin.CategoryDelete(rec, withChiURLParam(req, "id", category.ID.String()))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("CategoryDelete: got status %d, want %d: %s", rec.Code, http.StatusNoContent, rec.Body)
	}
	if remaining, err := env.SubStore.List(); err != nil || len(remaining) != 0 {
		t.Errorf("sub-categories after cascade = %d (err %v), want 0", len(remaining), err)
	}
}

func TestProductUpdate_UnknownID_Returns404(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.ProductUpdate(rec, putJSON("/api/admin/products/x", uuid.New().String(),
		`{"name":"Ghost","price":1,"category_id":"`+uuid.New().String()+`"}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusNotFound, rec.Body)
	}
	var resp apiError
	decodeBody(t, rec, &resp)
	if resp.Kind != KindNotFound {
		t.Errorf("got kind %q, want %q", resp.Kind, KindNotFound)
	}
}

func TestSuperSubCategoryUpdate_KeepsOwnSlug(t *testing.T) {
	env := newTestEnv(t)
	cleanCatalog(t, env.DB)
	t.Cleanup(func() { cleanCatalog(t, env.DB) })

	category, err := env.CategoryStore.Create(&models.Category{Name: "Security Systems"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	sub, err := env.SubStore.Create(&models.SubCategory{Name: "Alarms", CategoryID: category.ID})
	if err != nil {
		t.Fatalf("create sub-category: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Admin.SuperSubCategoryCreate(rec, postJSON("/api/admin/super-sub-categories",
		`{"name":"Wireless Alarms","image_url":"https://cdn.example.com/uploads/alarm.jpg",
		  "sub_category_id":"`+sub.ID.String()+`"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("SuperSubCategoryCreate: got status %d: %s", rec.Code, rec.Body)
	}
	var superSub models.SuperSubCategory
	decodeBody(t, rec, &superSub)

	// Re-saving under the same slug must not conflict with itself. The
	// dropped image triggers the (storage-less, no-op) cleanup path.
	rec = httptest.NewRecorder()
	env.Admin.SuperSubCategoryUpdate(rec, putJSON("/api/admin/super-sub-categories/x", superSub.ID.String(),
		`{"name":"Wireless Alarms","slug":"`+superSub.Slug+`","sub_category_id":"`+sub.ID.String()+`"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("SuperSubCategoryUpdate: got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	var updated models.SuperSubCategory
	decodeBody(t, rec, &updated)
	if updated.Slug != superSub.Slug {
		t.Errorf("slug = %q, want %q", updated.Slug, superSub.Slug)
	}
	if updated.ImageURL != nil {
		t.Error("update should clear the image reference")
	}
}

func TestSuperSubCategoryUpdate_UnknownID_Returns404(t *testing.T) {
	env := newTestEnv(t)
	cleanCatalog(t, env.DB)
	t.Cleanup(func() { cleanCatalog(t, env.DB) })

	category, err := env.CategoryStore.Create(&models.Category{Name: "Networking"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	sub, err := env.SubStore.Create(&models.SubCategory{Name: "Routers", CategoryID: category.ID})
	if err != nil {
		t.Fatalf("create sub-category: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Admin.SuperSubCategoryUpdate(rec, putJSON("/api/admin/super-sub-categories/x", uuid.New().String(),
		`{"name":"Ghost","sub_category_id":"`+sub.ID.String()+`"}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusNotFound, rec.Body)
	}
}

func TestSubCategoriesList_FilterByCategory(t *testing.T) {
	env := newTestEnv(t)
	cleanCatalog(t, env.DB)
	t.Cleanup(func() { cleanCatalog(t, env.DB) })

	catA, err := env.CategoryStore.Create(&models.Category{Name: "Networking"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	catB, err := env.CategoryStore.Create(&models.Category{Name: "Power"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := env.SubStore.Create(&models.SubCategory{Name: "Switches", CategoryID: catA.ID}); err != nil {
		t.Fatalf("create sub-category: %v", err)
	}
	if _, err := env.SubStore.Create(&models.SubCategory{Name: "UPS", CategoryID: catB.ID}); err != nil {
		t.Fatalf("create sub-category: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sub-categories?category_id="+catA.ID.String(), nil)
	rec := httptest.NewRecorder()
	env.Admin.SubCategoriesList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
	var items []models.SubCategory
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0].Name != "Switches" {
		t.Errorf("filtered list = %+v, want single Switches entry", items)
	}
}
