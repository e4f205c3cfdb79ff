// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"digitallink/internal/models"
)

// ProductStore manages catalog products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, slug, description, price, stock, status, is_featured,
	image_url, category_id, sub_category_id, super_sub_category_id, created_at, updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Stock,
		&p.Status, &p.IsFeatured, &p.ImageURL,
		&p.CategoryID, &p.SubCategoryID, &p.SuperSubCategoryID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all products, newest first.
func (s *ProductStore) List() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListFeatured returns active featured products, newest first, capped at limit.
// Used by the public homepage.
func (s *ProductStore) ListFeatured(limit int) ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT `+productColumns+` FROM products
		WHERE is_featured AND status = 'active'
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	defer rows.Close()

	items := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a product by slug. Returns nil if not found.
func (s *ProductStore) FindBySlug(slug string) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		INSERT INTO products (name, slug, description, price, stock, status, is_featured,
			image_url, category_id, sub_category_id, super_sub_category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+productColumns,
		p.Name, p.Slug, p.Description, p.Price, p.Stock, p.Status, p.IsFeatured,
		p.ImageURL, p.CategoryID, p.SubCategoryID, p.SuperSubCategoryID,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update modifies an existing product. Returns false if no row matched.
func (s *ProductStore) Update(p *models.Product) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE products SET
			name = $1, slug = $2, description = $3, price = $4, stock = $5,
			status = $6, is_featured = $7, image_url = $8,
			category_id = $9, sub_category_id = $10, super_sub_category_id = $11,
			updated_at = NOW()
		WHERE id = $12
	`, p.Name, p.Slug, p.Description, p.Price, p.Stock,
		p.Status, p.IsFeatured, p.ImageURL,
		p.CategoryID, p.SubCategoryID, p.SuperSubCategoryID, p.ID)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update product rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes a product by ID. Returns false if no row matched.
func (s *ProductStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product rows: %w", err)
	}
	return n > 0, nil
}
