// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"digitallink/internal/models"
)

func TestCategoryPayloadValidate(t *testing.T) {
	if err := (categoryPayload{Name: "Security Systems"}).Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := (categoryPayload{}).Validate(); err == nil {
		t.Error("empty name accepted")
	}
	if err := (categoryPayload{Name: strings.Repeat("x", maxNameLen+1)}).Validate(); err == nil {
		t.Error("oversized name accepted")
	}
}

func TestSubCategoryPayloadValidate(t *testing.T) {
	if err := (subCategoryPayload{Name: "CCTV", CategoryID: uuid.New()}).Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := (subCategoryPayload{Name: "CCTV"}).Validate(); err == nil {
		t.Error("zero category_id accepted")
	}
}

func TestSuperSubCategoryPayloadValidate(t *testing.T) {
	base := superSubCategoryPayload{Name: "IP Cameras", SubCategoryID: uuid.New()}
	if err := base.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	withSlug := base
	withSlug.Slug = "ip-cameras"
	if err := withSlug.Validate(); err != nil {
		t.Errorf("canonical slug rejected: %v", err)
	}

	badSlug := base
	badSlug.Slug = "IP Cameras"
	if err := badSlug.Validate(); err == nil {
		t.Error("non-canonical slug accepted")
	}
}

func TestProductPayloadValidate(t *testing.T) {
	valid := productPayload{Name: "Dome Camera", Price: 45.5, Stock: 3, CategoryID: uuid.New()}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*productPayload)
	}{
		{"empty name", func(p *productPayload) { p.Name = "" }},
		{"negative price", func(p *productPayload) { p.Price = -0.001 }},
		{"negative stock", func(p *productPayload) { p.Stock = -1 }},
		{"unknown status", func(p *productPayload) { p.Status = "retired" }},
		{"zero category", func(p *productPayload) { p.CategoryID = uuid.Nil }},
		{"bad slug", func(p *productPayload) { p.Slug = "Not A Slug" }},
	}
	for _, tc := range cases {
		p := valid
		tc.mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: payload accepted", tc.name)
		}
	}

	// Empty status is fine; it defaults to active later.
	p := valid
	p.Status = ""
	if err := p.Validate(); err != nil {
		t.Errorf("empty status rejected: %v", err)
	}
	p.Status = models.ProductOutOfStock
	if err := p.Validate(); err != nil {
		t.Errorf("out_of_stock rejected: %v", err)
	}
}

func TestContactPayloadValidate(t *testing.T) {
	valid := contactPayload{Name: "Ahmed", Email: "ahmed@example.com", Message: "hello"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	for _, tc := range []contactPayload{
		{Email: "ahmed@example.com", Message: "hello"},
		{Name: "Ahmed", Email: "nope", Message: "hello"},
		{Name: "Ahmed", Email: "ahmed@example.com"},
	} {
		if err := tc.Validate(); err == nil {
			t.Errorf("invalid payload %+v accepted", tc)
		}
	}
}

func TestNewsletterPayloadValidate(t *testing.T) {
	if err := (newsletterPayload{Email: "a@b.co"}).Validate(); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := (newsletterPayload{Email: "nope"}).Validate(); err == nil {
		t.Error("invalid email accepted")
	}
	if err := (newsletterPayload{}).Validate(); err == nil {
		t.Error("missing email accepted")
	}
}
