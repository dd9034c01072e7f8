// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/validation"
)

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	r = r.WithContext(logging.ContextWithRequestID(r.Context(), "req-123"))

	NewResponseWriter(w, r).Success(map[string]string{"message": "hello"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	env := decodeEnvelope[map[string]string](t, w.Body.Bytes())
	if !env.Success {
		t.Error("Expected Success to be true")
	}
	if env.Error != nil {
		t.Error("Expected Error to be nil")
	}
	if env.Data["message"] != "hello" {
		t.Errorf("data = %v", env.Data)
	}
	if env.Meta == nil || env.Meta.Timestamp.IsZero() {
		t.Fatal("Expected Meta with Timestamp")
	}
	if env.Meta.RequestID != "req-123" {
		t.Errorf("meta.request_id = %q, want req-123", env.Meta.RequestID)
	}
}

func TestResponseWriter_Created(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)

	NewResponseWriter(w, r).Created(map[string]int{"id": 1})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if env := decodeEnvelope[map[string]int](t, w.Body.Bytes()); !env.Success || env.Data["id"] != 1 {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(rw *ResponseWriter)
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest, "bad"},
		{"unauthorized", func(rw *ResponseWriter) { rw.Unauthorized() }, http.StatusUnauthorized, ErrCodeUnauthorized, MessageLoginRequired},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("nope") }, http.StatusNotFound, ErrCodeNotFound, "nope"},
		{"rate limited", func(rw *ResponseWriter) { rw.TooManyRequests("slow") }, http.StatusTooManyRequests, ErrCodeRateLimitExceeded, "slow"},
		{"internal", func(rw *ResponseWriter) { rw.InternalError(errBoom) }, http.StatusInternalServerError, ErrCodeInternalError, MessageServerError},
		{"database", func(rw *ResponseWriter) { rw.DatabaseError(errBoom) }, http.StatusInternalServerError, ErrCodeDatabaseError, MessageServerError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable(errBoom) }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, MessageServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.write(NewResponseWriter(w, r))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			assertError(t, w.Body.Bytes(), tt.wantCode, tt.wantMessage)
		})
	}
}

func TestResponseWriter_InternalErrorHidesCause(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	NewResponseWriter(w, r).InternalError(errBoom)

	env := decodeEnvelope[any](t, w.Body.Bytes())
	if env.Error.Details != nil {
		t.Errorf("details = %v, want none", env.Error.Details)
	}
	if got := w.Body.String(); strings.Contains(got, "boom") {
		t.Errorf("response leaks internal error: %s", got)
	}
}

func TestResponseWriter_ValidationError(t *testing.T) {
	t.Parallel()

	verr := validation.ValidateStruct(&validation.CreatePantryItemRequest{})
	if verr == nil {
		t.Fatal("expected validation failure")
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)
	NewResponseWriter(w, r).ValidationError(verr)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	assertError(t, w.Body.Bytes(), ErrCodeValidationFailed, MessageRequiredMissing)
}

func TestWriteUnauthorized(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	WriteUnauthorized(w, r, errBoom)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	assertError(t, w.Body.Bytes(), ErrCodeUnauthorized, MessageLoginRequired)
}
