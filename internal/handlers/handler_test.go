// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"digitallink/internal/content"
	"digitallink/internal/database"
	"digitallink/internal/render"
	"digitallink/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "digitallink")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "digitallink")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. The page
// cache is nil (valid no-op) and S3 storage is not configured.
type testEnv struct {
	DB            *sql.DB
	CategoryStore *store.CategoryStore
	SubStore      *store.SubCategoryStore
	SuperSubStore *store.SuperSubCategoryStore
	ProductStore  *store.ProductStore
	EnquiryStore  *store.EnquiryStore
	Admin         *Admin
	Public        *Public
	Enquiries     *Enquiries
	Health        *Health
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	categoryStore := store.NewCategoryStore(db)
	subStore := store.NewSubCategoryStore(db)
	superSubStore := store.NewSuperSubCategoryStore(db)
	productStore := store.NewProductStore(db)
	mediaStore := store.NewMediaStore(db)
	enquiryStore := store.NewEnquiryStore(db)

	admin := NewAdmin(categoryStore, subStore, superSubStore, productStore, mediaStore, nil, nil)
	public := NewPublic(renderer, content.Articles(), productStore, nil)
	enquiries := NewEnquiries(enquiryStore)
	health := NewHealth(db)

	return &testEnv{
		DB:            db,
		CategoryStore: categoryStore,
		SubStore:      subStore,
		SuperSubStore: superSubStore,
		ProductStore:  productStore,
		EnquiryStore:  enquiryStore,
		Admin:         admin,
		Public:        public,
		Enquiries:     enquiries,
		Health:        health,
	}
}

// cleanCatalog removes catalog rows created by a test. Products first, then
// the cascade removes the taxonomy.
func cleanCatalog(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, q := range []string{
		`DELETE FROM products`,
		`DELETE FROM categories`,
	} {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("cleanup %q: %v", q, err)
		}
	}
}

// cleanEnquiries removes enquiry rows created by a test.
func cleanEnquiries(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, q := range []string{
		`DELETE FROM contact_enquiries`,
		`DELETE FROM newsletter_enquiries`,
	} {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("cleanup %q: %v", q, err)
		}
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes a recorded JSON response into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
