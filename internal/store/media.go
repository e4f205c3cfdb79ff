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

// MediaStore records uploaded files in the database.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore returns a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, file_name, content_type, size_bytes, s3_key, thumb_s3_key, created_at`

func scanMedia(scanner interface{ Scan(...any) error }) (*models.Media, error) {
	var m models.Media
	err := scanner.Scan(
		&m.ID, &m.FileName, &m.ContentType, &m.SizeBytes,
		&m.S3Key, &m.ThumbS3Key, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns uploads, newest first, with limit/offset paging.
func (s *MediaStore) List(limit, offset int) ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT `+mediaColumns+` FROM media
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	items := []models.Media{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// Count returns the total number of uploads.
func (s *MediaStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM media`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return n, nil
}

// FindByID retrieves a media record by ID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	row := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id)
	m, err := scanMedia(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a new media record and returns it.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	row := s.db.QueryRow(`
		INSERT INTO media (file_name, content_type, size_bytes, s3_key, thumb_s3_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+mediaColumns,
		m.FileName, m.ContentType, m.SizeBytes, m.S3Key, m.ThumbS3Key,
	)
	result, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}
