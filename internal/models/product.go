// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus enumerates the lifecycle states of a catalog product.
type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductInactive   ProductStatus = "inactive"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// Valid reports whether s is one of the known product statuses.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductOutOfStock:
		return true
	}
	return false
}

// Product is a catalog entry. It may reference any level of the taxonomy:
// category is required, sub-category and super-sub-category are optional but
// must form a consistent parent chain when set.
type Product struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	Description        *string       `json:"description,omitempty"`
	Price              float64       `json:"price"`
	Stock              int           `json:"stock"`
	Status             ProductStatus `json:"status"`
	IsFeatured         bool          `json:"is_featured"`
	ImageURL           *string       `json:"image_url,omitempty"`
	CategoryID         uuid.UUID     `json:"category_id"`
	SubCategoryID      *uuid.UUID    `json:"sub_category_id,omitempty"`
	SuperSubCategoryID *uuid.UUID    `json:"super_sub_category_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
