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

// SubCategoryStore manages sub-categories in the database.
type SubCategoryStore struct {
	db *sql.DB
}

// NewSubCategoryStore returns a new SubCategoryStore.
func NewSubCategoryStore(db *sql.DB) *SubCategoryStore {
	return &SubCategoryStore{db: db}
}

const subCategoryColumns = `id, name, category_id, created_at, updated_at`

func scanSubCategory(scanner interface{ Scan(...any) error }) (*models.SubCategory, error) {
	var c models.SubCategory
	err := scanner.Scan(&c.ID, &c.Name, &c.CategoryID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all sub-categories ordered by name.
func (s *SubCategoryStore) List() ([]models.SubCategory, error) {
	rows, err := s.db.Query(`SELECT ` + subCategoryColumns + ` FROM sub_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sub-categories: %w", err)
	}
	defer rows.Close()

	items := []models.SubCategory{}
	for rows.Next() {
		c, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub-category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListByCategory returns the sub-categories of one category, ordered by name.
func (s *SubCategoryStore) ListByCategory(categoryID uuid.UUID) ([]models.SubCategory, error) {
	rows, err := s.db.Query(
		`SELECT `+subCategoryColumns+` FROM sub_categories WHERE category_id = $1 ORDER BY name`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sub-categories by category: %w", err)
	}
	defer rows.Close()

	items := []models.SubCategory{}
	for rows.Next() {
		c, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub-category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a sub-category by ID. Returns nil if not found.
func (s *SubCategoryStore) FindByID(id uuid.UUID) (*models.SubCategory, error) {
	row := s.db.QueryRow(`SELECT `+subCategoryColumns+` FROM sub_categories WHERE id = $1`, id)
	c, err := scanSubCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sub-category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new sub-category and returns it.
func (s *SubCategoryStore) Create(c *models.SubCategory) (*models.SubCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO sub_categories (name, category_id) VALUES ($1, $2)
		RETURNING `+subCategoryColumns,
		c.Name, c.CategoryID,
	)
	result, err := scanSubCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create sub-category: %w", err)
	}
	return result, nil
}

// Update modifies an existing sub-category. Returns false if no row matched.
func (s *SubCategoryStore) Update(c *models.SubCategory) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE sub_categories SET name = $1, category_id = $2, updated_at = NOW()
		WHERE id = $3
	`, c.Name, c.CategoryID, c.ID)
	if err != nil {
		return false, fmt.Errorf("update sub-category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update sub-category rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes a sub-category by ID. Returns false if no row matched.
func (s *SubCategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM sub_categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sub-category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete sub-category rows: %w", err)
	}
	return n > 0, nil
}
