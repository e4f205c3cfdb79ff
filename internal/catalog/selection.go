// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog enforces consistency across the three-tier product
// taxonomy (category → sub-category → super-sub-category). A Selection is
// only ever mutated through its named transitions, so a child selection can
// never outlive a parent change.
package catalog

import (
	"errors"

	"github.com/google/uuid"

	"digitallink/internal/models"
)

var (
	// ErrUnknownSubCategory means the sub-category id is not in the hierarchy.
	ErrUnknownSubCategory = errors.New("catalog: unknown sub-category")
	// ErrUnknownSuperSub means the super-sub-category id is not in the hierarchy.
	ErrUnknownSuperSub = errors.New("catalog: unknown super-sub-category")
	// ErrNoCategory means a sub-category was selected before a category.
	ErrNoCategory = errors.New("catalog: no category selected")
	// ErrNoSubCategory means a super-sub was selected before a sub-category.
	ErrNoSubCategory = errors.New("catalog: no sub-category selected")
	// ErrSubCategoryMismatch means the sub-category belongs to a different category.
	ErrSubCategoryMismatch = errors.New("catalog: sub-category does not belong to the selected category")
	// ErrSuperSubMismatch means the super-sub belongs to a different sub-category.
	ErrSuperSubMismatch = errors.New("catalog: super-sub-category does not belong to the selected sub-category")
)

// Hierarchy is a point-in-time snapshot of the taxonomy parent chains,
// built from the reference lists.
type Hierarchy struct {
	subParent   map[uuid.UUID]uuid.UUID // sub-category id → category id
	superParent map[uuid.UUID]uuid.UUID // super-sub id → sub-category id
}

// NewHierarchy builds a Hierarchy from the current sub-category and
// super-sub-category lists.
func NewHierarchy(subs []models.SubCategory, supers []models.SuperSubCategory) *Hierarchy {
	h := &Hierarchy{
		subParent:   make(map[uuid.UUID]uuid.UUID, len(subs)),
		superParent: make(map[uuid.UUID]uuid.UUID, len(supers)),
	}
	for _, s := range subs {
		h.subParent[s.ID] = s.CategoryID
	}
	for _, s := range supers {
		h.superParent[s.ID] = s.SubCategoryID
	}
	return h
}

// SubCategoryParent returns the category a sub-category belongs to.
func (h *Hierarchy) SubCategoryParent(id uuid.UUID) (uuid.UUID, bool) {
	p, ok := h.subParent[id]
	return p, ok
}

// SuperSubParent returns the sub-category a super-sub-category belongs to.
func (h *Hierarchy) SuperSubParent(id uuid.UUID) (uuid.UUID, bool) {
	p, ok := h.superParent[id]
	return p, ok
}

// ValidateChain checks that an already-assembled selection forms a
// consistent parent chain: if sub is set it must belong to category, and if
// super is set it must belong to sub. Used to vet product payloads before
// they reach the store.
func (h *Hierarchy) ValidateChain(category uuid.UUID, sub, super *uuid.UUID) error {
	if sub != nil {
		parent, ok := h.subParent[*sub]
		if !ok {
			return ErrUnknownSubCategory
		}
		if parent != category {
			return ErrSubCategoryMismatch
		}
	}
	if super != nil {
		if sub == nil {
			return ErrNoSubCategory
		}
		parent, ok := h.superParent[*super]
		if !ok {
			return ErrUnknownSuperSub
		}
		if parent != *sub {
			return ErrSuperSubMismatch
		}
	}
	return nil
}

// Selection holds the current taxonomy picks. The zero value is the
// NoCategory state.
type Selection struct {
	Category    *uuid.UUID
	SubCategory *uuid.UUID
	SuperSub    *uuid.UUID
}

// SelectCategory sets the category and unconditionally clears both child
// selections. Passing nil clears everything.
func (s *Selection) SelectCategory(id *uuid.UUID) {
	s.Category = id
	s.SubCategory = nil
	s.SuperSub = nil
}

// SelectSubCategory sets the sub-category and unconditionally clears the
// super-sub selection. The sub-category must belong to the currently
// selected category; on error the selection is left unchanged.
func (s *Selection) SelectSubCategory(h *Hierarchy, id uuid.UUID) error {
	if s.Category == nil {
		return ErrNoCategory
	}
	parent, ok := h.SubCategoryParent(id)
	if !ok {
		return ErrUnknownSubCategory
	}
	if parent != *s.Category {
		return ErrSubCategoryMismatch
	}
	s.SubCategory = &id
	s.SuperSub = nil
	return nil
}

// SelectSuperSub sets the super-sub-category. It must belong to the
// currently selected sub-category; on error the selection is left unchanged.
func (s *Selection) SelectSuperSub(h *Hierarchy, id uuid.UUID) error {
	if s.SubCategory == nil {
		return ErrNoSubCategory
	}
	parent, ok := h.SuperSubParent(id)
	if !ok {
		return ErrUnknownSuperSub
	}
	if parent != *s.SubCategory {
		return ErrSuperSubMismatch
	}
	s.SuperSub = &id
	return nil
}

// Consistent reports whether the selection satisfies the parent-chain
// invariant against the given hierarchy. A selection mutated only through
// the transitions above is always consistent; this exists as a test hook
// and a guard for selections restored from persisted form state.
func (s *Selection) Consistent(h *Hierarchy) bool {
	if s.SubCategory != nil {
		if s.Category == nil {
			return false
		}
		parent, ok := h.SubCategoryParent(*s.SubCategory)
		if !ok || parent != *s.Category {
			return false
		}
	}
	if s.SuperSub != nil {
		if s.SubCategory == nil {
			return false
		}
		parent, ok := h.SuperSubParent(*s.SuperSub)
		if !ok || parent != *s.SubCategory {
			return false
		}
	}
	return true
}
