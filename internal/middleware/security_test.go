// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("plain http", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		SecurityHeaders(noop).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		want := map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
			"Referrer-Policy":        "strict-origin-when-cross-origin",
		}
		for k, v := range want {
			if got := rec.Header().Get(k); got != v {
				t.Errorf("%s = %q, want %q", k, got, v)
			}
		}
		if rec.Header().Get("Strict-Transport-Security") != "" {
			t.Error("HSTS set on plain http")
		}
	})

	t.Run("behind tls proxy", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rec := httptest.NewRecorder()
		SecurityHeaders(noop).ServeHTTP(rec, req)

		if rec.Header().Get("Strict-Transport-Security") == "" {
			t.Error("HSTS missing behind https proxy")
		}
	})
}
