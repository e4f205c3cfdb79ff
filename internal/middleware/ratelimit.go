// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// visitor records the request times of one client inside the window.
type visitor struct {
	hits []time.Time
}

// RateLimiter throttles the public enquiry endpoints per client IP with a
// sliding window, so a form-spamming bot cannot flood the enquiry tables.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	done     chan struct{}
}

// NewRateLimiter allows limit requests per window for each client IP and
// starts a janitor goroutine that drops idle clients.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		done:     make(chan struct{}),
	}
	go rl.janitor()
	return rl
}

// Stop terminates the janitor goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.prune()
		case <-rl.done:
			return
		}
	}
}

// take records a request for ip and reports whether it stays within the
// limit. Hits that have slid out of the window are dropped first.
func (rl *RateLimiter) take(ip string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{}
		rl.visitors[ip] = v
	}

	kept := v.hits[:0]
	for _, h := range v.hits {
		if h.After(cutoff) {
			kept = append(kept, h)
		}
	}
	v.hits = kept

	if len(v.hits) >= rl.limit {
		return false
	}
	v.hits = append(v.hits, now)
	return true
}

// prune drops visitors whose every hit has left the window.
func (rl *RateLimiter) prune() {
	cutoff := time.Now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		idle := true
		for _, h := range v.hits {
			if h.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(rl.visitors, ip)
		}
	}
}

// Middleware rejects over-limit requests with 429 and a JSON error body,
// matching the JSON endpoints it guards.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.take(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many requests","kind":"validation"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the client address behind the reverse proxy: first
// hop of X-Forwarded-For, then X-Real-IP, then RemoteAddr minus the port.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := r.RemoteAddr
	if i := strings.LastIndexByte(addr, ':'); i != -1 {
		return addr[:i]
	}
	return addr
}
