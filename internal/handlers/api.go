// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Digitallink server.
// Handlers are grouped by concern (admin catalog, upload, public pages,
// enquiries, health) and receive their dependencies through the handler
// struct. Admin endpoints speak JSON; public pages render HTML.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind classifies a JSON API error so clients can branch without
// parsing the message text.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindServer     ErrorKind = "server"
)

// apiError is the JSON error envelope for admin and enquiry endpoints.
type apiError struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeError writes the JSON error envelope with the given status and kind.
func writeError(w http.ResponseWriter, status int, kind ErrorKind, msg string) {
	writeJSON(w, status, apiError{Error: msg, Kind: kind})
}

// validationError responds 400 with kind "validation".
func validationError(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, KindValidation, msg)
}

// notFoundError responds 404 with kind "not_found".
func notFoundError(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, KindNotFound, msg)
}

// conflictError responds 409 with kind "conflict".
func conflictError(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusConflict, KindConflict, msg)
}

// serverError logs the underlying error and responds 500 with a generic
// message so internals never leak to clients.
func serverError(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, KindServer, "internal server error")
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// parseID extracts and parses the {id} URL parameter.
func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// isUniqueViolation reports whether err wraps a PostgreSQL unique
// constraint violation (slug or email collisions).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
