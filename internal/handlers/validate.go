// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"digitallink/internal/models"
	"digitallink/internal/slug"
)

// Validation limits for admin and enquiry payload fields.
const (
	maxNameLen    = 200
	maxSlugLen    = 200
	maxDescLen    = 5_000
	maxURLLen     = 2_000
	maxSubjectLen = 300
	maxMessageLen = 10_000
)

// requiredUUID rejects the zero UUID. ozzo's Required cannot tell a zero
// [16]byte array from a set one, so UUID presence gets its own rule.
var requiredUUID = validation.By(func(value any) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
})

// validSlug accepts an empty slug (one is generated from the name) or a
// canonical slug: lowercase alphanumerics separated by single hyphens.
var validSlug = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !slug.Valid(s) {
		return errors.New("must be lowercase letters, digits and hyphens")
	}
	return nil
})

// validStatus accepts an empty status (defaults to active) or one of the
// known product statuses.
var validStatus = validation.By(func(value any) error {
	s, _ := value.(models.ProductStatus)
	if s == "" {
		return nil
	}
	if !s.Valid() {
		return errors.New("must be one of: active, inactive, out_of_stock")
	}
	return nil
})

// categoryPayload is the request body for category create/update.
type categoryPayload struct {
	Name string `json:"name"`
}

func (p categoryPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.RuneLength(1, maxNameLen)),
	)
}

// subCategoryPayload is the request body for sub-category create/update.
type subCategoryPayload struct {
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
}

func (p subCategoryPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.RuneLength(1, maxNameLen)),
		validation.Field(&p.CategoryID, requiredUUID),
	)
}

// superSubCategoryPayload is the request body for super-sub-category
// create/update. Slug is optional; when empty it is generated from Name.
type superSubCategoryPayload struct {
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"image_url"`
	SubCategoryID uuid.UUID `json:"sub_category_id"`
}

func (p superSubCategoryPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.RuneLength(1, maxNameLen)),
		validation.Field(&p.Slug, validSlug, validation.RuneLength(0, maxSlugLen)),
		validation.Field(&p.Description, validation.RuneLength(0, maxDescLen)),
		validation.Field(&p.ImageURL, validation.RuneLength(0, maxURLLen)),
		validation.Field(&p.SubCategoryID, requiredUUID),
	)
}

// productPayload is the request body for product create/update. CategoryID
// is required; the optional sub and super-sub references must form a
// consistent parent chain, checked against the taxonomy after validation.
type productPayload struct {
	Name               string               `json:"name"`
	Slug               string               `json:"slug"`
	Description        *string              `json:"description"`
	Price              float64              `json:"price"`
	Stock              int                  `json:"stock"`
	Status             models.ProductStatus `json:"status"`
	IsFeatured         bool                 `json:"is_featured"`
	ImageURL           *string              `json:"image_url"`
	CategoryID         uuid.UUID            `json:"category_id"`
	SubCategoryID      *uuid.UUID           `json:"sub_category_id"`
	SuperSubCategoryID *uuid.UUID           `json:"super_sub_category_id"`
}

func (p productPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.RuneLength(1, maxNameLen)),
		validation.Field(&p.Slug, validSlug, validation.RuneLength(0, maxSlugLen)),
		validation.Field(&p.Description, validation.RuneLength(0, maxDescLen)),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.Stock, validation.Min(0)),
		validation.Field(&p.Status, validStatus),
		validation.Field(&p.ImageURL, validation.RuneLength(0, maxURLLen)),
		validation.Field(&p.CategoryID, requiredUUID),
	)
}

// contactPayload is the request body for the public contact form.
type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (p contactPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.RuneLength(1, maxNameLen)),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Subject, validation.RuneLength(0, maxSubjectLen)),
		validation.Field(&p.Message, validation.Required, validation.RuneLength(1, maxMessageLen)),
	)
}

// newsletterPayload is the request body for a newsletter signup.
type newsletterPayload struct {
	Email string `json:"email"`
}

func (p newsletterPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
	)
}
