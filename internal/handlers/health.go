// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"
)

// healthPingTimeout bounds the database ping so the probe never hangs.
const healthPingTimeout = 2 * time.Second

// Health exposes service health probes.
type Health struct {
	db *sql.DB
}

// NewHealth creates a Health handler group.
func NewHealth(db *sql.DB) *Health {
	return &Health{db: db}
}

// Database reports database connectivity. The response is always 200; a
// broken connection shows as connected:false so monitoring reads the body,
// not the status code.
func (h *Health) Database(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	connected := true
	if err := h.db.PingContext(ctx); err != nil {
		slog.Warn("database health ping failed", "error", err)
		connected = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"connected": connected,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
