package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with a small development catalog: one
// category chain (category → sub-category → super-sub-category) and a
// featured product. It is a no-op if any categories already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var categoryID string
	err = tx.QueryRow(`
		INSERT INTO categories (name) VALUES ('Security Systems') RETURNING id
	`).Scan(&categoryID)
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	var subCategoryID string
	err = tx.QueryRow(`
		INSERT INTO sub_categories (name, category_id) VALUES ('CCTV', $1) RETURNING id
	`, categoryID).Scan(&subCategoryID)
	if err != nil {
		return fmt.Errorf("seed sub-category: %w", err)
	}

	var superSubID string
	err = tx.QueryRow(`
		INSERT INTO super_sub_categories (name, slug, description, sub_category_id)
		VALUES ('IP Cameras', 'ip-cameras', 'Network cameras for indoor and outdoor surveillance.', $1)
		RETURNING id
	`, subCategoryID).Scan(&superSubID)
	if err != nil {
		return fmt.Errorf("seed super-sub-category: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO products (name, slug, description, price, stock, status, is_featured,
			category_id, sub_category_id, super_sub_category_id)
		VALUES ('4MP Dome Camera', '4mp-dome-camera',
			'Vandal-resistant dome camera with night vision.',
			45.500, 24, 'active', TRUE, $1, $2, $3)
	`, categoryID, subCategoryID, superSubID)
	if err != nil {
		return fmt.Errorf("seed product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with development catalog")
	return nil
}
