// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"digitallink/internal/models"
)

// ErrDuplicateEmail is returned when a newsletter signup repeats an
// already-subscribed address.
var ErrDuplicateEmail = errors.New("store: email already subscribed")

// EnquiryStore persists contact-form messages and newsletter signups.
type EnquiryStore struct {
	db *sql.DB
}

// NewEnquiryStore returns a new EnquiryStore.
func NewEnquiryStore(db *sql.DB) *EnquiryStore {
	return &EnquiryStore{db: db}
}

// CreateContact inserts a contact-form enquiry and returns it.
func (s *EnquiryStore) CreateContact(e *models.ContactEnquiry) (*models.ContactEnquiry, error) {
	row := s.db.QueryRow(`
		INSERT INTO contact_enquiries (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at
	`, e.Name, e.Email, e.Subject, e.Message)

	var out models.ContactEnquiry
	err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Subject, &out.Message, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact enquiry: %w", err)
	}
	return &out, nil
}

// ListContacts returns contact enquiries, newest first.
func (s *EnquiryStore) ListContacts() ([]models.ContactEnquiry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, created_at
		FROM contact_enquiries ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contact enquiries: %w", err)
	}
	defer rows.Close()

	items := []models.ContactEnquiry{}
	for rows.Next() {
		var e models.ContactEnquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Subject, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact enquiry: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// CreateNewsletter inserts a newsletter signup. A repeated email returns
// ErrDuplicateEmail (unique violation at the store, surfaced as a conflict).
func (s *EnquiryStore) CreateNewsletter(email string) (*models.NewsletterEnquiry, error) {
	row := s.db.QueryRow(`
		INSERT INTO newsletter_enquiries (email) VALUES ($1)
		RETURNING id, email, created_at
	`, email)

	var out models.NewsletterEnquiry
	err := row.Scan(&out.ID, &out.Email, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create newsletter enquiry: %w", err)
	}
	return &out, nil
}
