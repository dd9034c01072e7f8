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

	"github.com/tomtom215/fridgechef/internal/models"
)

func TestListIngredients(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.add("user-1",
		models.PantryItem{ID: "a", Name: "우유", Category: models.CategoryDairy, Quantity: 1, Unit: "L", ExpiresAt: day("2026-10-20")},
		models.PantryItem{ID: "b", Name: "소금", Category: models.CategorySeasoning, Quantity: 0, Unit: "g"},
	)
	store.add("user-2", models.PantryItem{ID: "c", Name: "두부"})
	h := newTestHandler(t, store, &fakeSource{}, nil)

	w := httptest.NewRecorder()
	h.ListIngredients(w, withUser(httptest.NewRequest(http.MethodGet, "/api/ingredients", nil), "user-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope[ItemsResponse[models.PantryItemView]](t, w.Body.Bytes())
	items := env.Data.Items
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (other users' items must not leak)", len(items))
	}

	milk := items[0]
	if milk.Category != "유제품" || milk.Emoji != "🥛" {
		t.Errorf("milk category/emoji = %q/%q", milk.Category, milk.Emoji)
	}
	if milk.ExpiryDate == nil || *milk.ExpiryDate != "2026-10-20" {
		t.Errorf("milk expiryDate = %v", milk.ExpiryDate)
	}
	if milk.DaysLeft == nil || *milk.DaysLeft != 3 {
		t.Errorf("milk daysLeft = %v, want 3", milk.DaysLeft)
	}

	salt := items[1]
	if salt.Quantity != 0 {
		t.Errorf("zero quantity renders as %v, want the stored 0", salt.Quantity)
	}
	if salt.ExpiryDate != nil || salt.DaysLeft != nil {
		t.Errorf("salt without expiry = %v/%v, want nil/nil", salt.ExpiryDate, salt.DaysLeft)
	}
}

func TestListIngredients_EmptyIsArray(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeStore(), &fakeSource{}, nil)

	w := httptest.NewRecorder()
	h.ListIngredients(w, withUser(httptest.NewRequest(http.MethodGet, "/api/ingredients", nil), "nobody"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("body = %s, want empty items array", w.Body.String())
	}
}

func TestListIngredients_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no user", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, newFakeStore(), &fakeSource{}, nil)
		w := httptest.NewRecorder()
		h.ListIngredients(w, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		assertError(t, w.Body.Bytes(), ErrCodeUnauthorized, MessageLoginRequired)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		store.listErr = errBoom
		h := newTestHandler(t, store, &fakeSource{}, nil)
		w := httptest.NewRecorder()
		h.ListIngredients(w, withUser(httptest.NewRequest(http.MethodGet, "/api/ingredients", nil), "u"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
		assertError(t, w.Body.Bytes(), ErrCodeDatabaseError, MessageServerError)
	})
}

func TestCreateIngredient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		saveErr      error
		wantStatus   int
		wantCode     string
		wantMessage  string
		wantCategory string
	}{
		{
			name:         "valid",
			body:         `{"name":" 계란 ","category":"유제품","quantity":6,"unit":"개","purchaseDate":"2026-10-15","expiryDate":"2026-10-24"}`,
			wantStatus:   http.StatusCreated,
			wantCategory: "유제품",
		},
		{
			name:         "unknown category maps to other",
			body:         `{"name":"초콜릿","category":"간식","quantity":1,"unit":"개"}`,
			wantStatus:   http.StatusCreated,
			wantCategory: "기타",
		},
		{
			name:        "missing name",
			body:        `{"category":"야채","quantity":1,"unit":"개"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeValidationFailed,
			wantMessage: MessageRequiredMissing,
		},
		{
			name:        "blank unit",
			body:        `{"name":"양파","category":"야채","quantity":1,"unit":"   "}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeValidationFailed,
			wantMessage: MessageRequiredMissing,
		},
		{
			name:       "bad date",
			body:       `{"name":"양파","category":"야채","quantity":1,"unit":"개","expiryDate":"next week"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidationFailed,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeBadRequest,
			wantMessage: MessageRequiredMissing,
		},
		{
			name:        "storage failure",
			body:        `{"name":"양파","category":"야채","quantity":1,"unit":"개"}`,
			saveErr:     errBoom,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrCodeDatabaseError,
			wantMessage: MessageServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore()
			store.saveErr = tt.saveErr
			h := newTestHandler(t, store, &fakeSource{}, nil)

			r := httptest.NewRequest(http.MethodPost, "/api/ingredients", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.CreateIngredient(w, withUser(r, "user-1"))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				assertError(t, w.Body.Bytes(), tt.wantCode, tt.wantMessage)
				if len(store.created) != 0 {
					t.Error("rejected request was stored")
				}
				return
			}

			view := decodeEnvelope[models.PantryItemView](t, w.Body.Bytes()).Data
			if view.ID == "" {
				t.Error("created item has no id")
			}
			if view.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", view.Category, tt.wantCategory)
			}
			if len(store.created) != 1 || store.created[0].UserID != "user-1" {
				t.Fatalf("stored = %+v", store.created)
			}
			if strings.TrimSpace(store.created[0].Name) != store.created[0].Name {
				t.Errorf("stored name %q was not trimmed", store.created[0].Name)
			}
		})
	}
}

func TestCreateIngredient_ResponseShape(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeStore(), &fakeSource{}, nil)
	body := `{"name":"계란","category":"유제품","quantity":6,"unit":"개","expiryDate":"2026-10-24"}`

	w := httptest.NewRecorder()
	h.CreateIngredient(w, withUser(httptest.NewRequest(http.MethodPost, "/api/ingredients", strings.NewReader(body)), "u"))

	view := decodeEnvelope[models.PantryItemView](t, w.Body.Bytes()).Data
	if view.Name != "계란" || view.Quantity != 6 || view.Unit != "개" {
		t.Errorf("view = %+v", view)
	}
	if view.PurchaseDate != nil {
		t.Errorf("purchaseDate = %v, want null", *view.PurchaseDate)
	}
	if view.DaysLeft == nil || *view.DaysLeft != 7 {
		t.Errorf("daysLeft = %v, want 7", view.DaysLeft)
	}
}

func TestCreateIngredient_Unauthorized(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeStore(), &fakeSource{}, nil)
	w := httptest.NewRecorder()
	h.CreateIngredient(w, httptest.NewRequest(http.MethodPost, "/api/ingredients", strings.NewReader(`{}`)))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	assertError(t, w.Body.Bytes(), ErrCodeUnauthorized, MessageLoginRequired)
}
