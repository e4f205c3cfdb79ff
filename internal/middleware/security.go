// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// contentSecurityPolicy matches what the public templates actually load:
// the Tailwind CDN script (which injects inline styles), product and
// article images served from the S3 bucket, everything else same-origin.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdn.tailwindcss.com 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' https: data:"

// SecureHeaders sets the browser hardening headers on every response. The
// site embeds nothing and is embedded nowhere, so framing is denied
// outright.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
