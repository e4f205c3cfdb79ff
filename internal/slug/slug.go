// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

// nonAlphanumericRun matches a maximal run of characters that are neither
// ASCII letters nor digits. Each run collapses to a single hyphen.
var nonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "Pro Max Camera Kit!!" → "pro-max-camera-kit"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumericRun.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Valid reports whether s is already a well-formed slug, i.e. Generate
// would leave it unchanged. Used to validate manually edited slug fields.
func Valid(s string) bool {
	return s != "" && Generate(s) == s
}
