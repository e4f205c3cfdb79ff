// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"digitallink/internal/models"
	"digitallink/internal/store"
)

// Enquiries handles the public contact form and newsletter signups.
type Enquiries struct {
	enquiryStore *store.EnquiryStore
}

// NewEnquiries creates an Enquiries handler group.
func NewEnquiries(enquiryStore *store.EnquiryStore) *Enquiries {
	return &Enquiries{enquiryStore: enquiryStore}
}

// ContactCreate records a contact-form message.
func (e *Enquiries) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var p contactPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	created, err := e.enquiryStore.CreateContact(&models.ContactEnquiry{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.ToLower(strings.TrimSpace(p.Email)),
		Subject: strings.TrimSpace(p.Subject),
		Message: p.Message,
	})
	if err != nil {
		serverError(w, "create contact enquiry failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ContactsList returns all contact-form messages, newest first, for the
// admin inbox.
func (e *Enquiries) ContactsList(w http.ResponseWriter, r *http.Request) {
	items, err := e.enquiryStore.ListContacts()
	if err != nil {
		serverError(w, "list contact enquiries failed", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// NewsletterCreate records a newsletter signup. A repeated email is a
// conflict, not a success.
func (e *Enquiries) NewsletterCreate(w http.ResponseWriter, r *http.Request) {
	var p newsletterPayload
	if err := decodeJSON(r, &p); err != nil {
		validationError(w, "invalid JSON body: "+err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		validationError(w, err.Error())
		return
	}

	created, err := e.enquiryStore.CreateNewsletter(strings.ToLower(strings.TrimSpace(p.Email)))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			conflictError(w, "email is already subscribed")
			return
		}
		serverError(w, "create newsletter enquiry failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
