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

// SuperSubCategoryStore manages third-level taxonomy entries in the database.
type SuperSubCategoryStore struct {
	db *sql.DB
}

// NewSuperSubCategoryStore returns a new SuperSubCategoryStore.
func NewSuperSubCategoryStore(db *sql.DB) *SuperSubCategoryStore {
	return &SuperSubCategoryStore{db: db}
}

const superSubColumns = `id, name, slug, description, image_url, sub_category_id, created_at, updated_at`

func scanSuperSub(scanner interface{ Scan(...any) error }) (*models.SuperSubCategory, error) {
	var c models.SuperSubCategory
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.ImageURL, &c.SubCategoryID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all super-sub-categories ordered by name.
func (s *SuperSubCategoryStore) List() ([]models.SuperSubCategory, error) {
	rows, err := s.db.Query(`SELECT ` + superSubColumns + ` FROM super_sub_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list super-sub-categories: %w", err)
	}
	defer rows.Close()

	items := []models.SuperSubCategory{}
	for rows.Next() {
		c, err := scanSuperSub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan super-sub-category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a super-sub-category by ID. Returns nil if not found.
func (s *SuperSubCategoryStore) FindByID(id uuid.UUID) (*models.SuperSubCategory, error) {
	row := s.db.QueryRow(`SELECT `+superSubColumns+` FROM super_sub_categories WHERE id = $1`, id)
	c, err := scanSuperSub(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find super-sub-category by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a super-sub-category by slug. Returns nil if not found.
func (s *SuperSubCategoryStore) FindBySlug(slug string) (*models.SuperSubCategory, error) {
	row := s.db.QueryRow(`SELECT `+superSubColumns+` FROM super_sub_categories WHERE slug = $1`, slug)
	c, err := scanSuperSub(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find super-sub-category by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new super-sub-category and returns it.
func (s *SuperSubCategoryStore) Create(c *models.SuperSubCategory) (*models.SuperSubCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO super_sub_categories (name, slug, description, image_url, sub_category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+superSubColumns,
		c.Name, c.Slug, c.Description, c.ImageURL, c.SubCategoryID,
	)
	result, err := scanSuperSub(row)
	if err != nil {
		return nil, fmt.Errorf("create super-sub-category: %w", err)
	}
	return result, nil
}

// Update modifies an existing super-sub-category. Returns false if no row matched.
func (s *SuperSubCategoryStore) Update(c *models.SuperSubCategory) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE super_sub_categories SET
			name = $1, slug = $2, description = $3, image_url = $4,
			sub_category_id = $5, updated_at = NOW()
		WHERE id = $6
	`, c.Name, c.Slug, c.Description, c.ImageURL, c.SubCategoryID, c.ID)
	if err != nil {
		return false, fmt.Errorf("update super-sub-category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update super-sub-category rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes a super-sub-category by ID. Returns false if no row matched.
func (s *SuperSubCategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM super_sub_categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete super-sub-category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete super-sub-category rows: %w", err)
	}
	return n > 0, nil
}
