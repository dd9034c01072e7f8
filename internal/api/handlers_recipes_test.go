// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/fridgechef/internal/catalog"
	"github.com/tomtom215/fridgechef/internal/metrics"
	"github.com/tomtom215/fridgechef/internal/models"
	"github.com/tomtom215/fridgechef/internal/recommend"
)

func testRecipe(id string, difficulty int, ingredients ...string) models.Recipe {
	r := models.Recipe{
		ID:          id,
		Name:        id,
		ImageURL:    "https://img.example.com/" + id + ".jpg",
		Difficulty:  difficulty,
		CookingTime: 20,
		Servings:    2,
		UserName:    "chef",
	}
	for _, name := range ingredients {
		r.Ingredients = append(r.Ingredients, models.RecipeIngredient{Name: name})
	}
	return r
}

func testCatalog() []models.Recipe {
	return []models.Recipe{
		testRecipe("low", 4, "egg", "pork", "kimchi", "tofu"),
		testRecipe("full", 1, "egg", "milk"),
		testRecipe("half", 3, "egg", "beef"),
		testRecipe("none", 5, "beef", "pork"),
	}
}

func pantryWithEggAndMilk() *fakeStore {
	store := newFakeStore()
	store.add("user-1",
		models.PantryItem{ID: "1", Name: "Egg", Quantity: 3},
		models.PantryItem{ID: "2", Name: "milk", Quantity: 1},
		models.PantryItem{ID: "3", Name: "beef", Quantity: 0},
	)
	return store
}

func TestListRecipes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeStore(), &fakeSource{recipes: testCatalog()}, nil)
	w := httptest.NewRecorder()
	h.ListRecipes(w, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	items := decodeEnvelope[ItemsResponse[models.Recipe]](t, w.Body.Bytes()).Data.Items
	if len(items) != 4 || items[0].ID != "low" || items[3].ID != "none" {
		t.Errorf("catalog order not preserved: %+v", items)
	}
}

func TestRecommendations_Defaults(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, pantryWithEggAndMilk(), &fakeSource{recipes: testCatalog()}, nil)
	before := testutil.ToFloat64(metrics.RecommendationsTotal)

	w := httptest.NewRecorder()
	h.Recommendations(w, withUser(httptest.NewRequest(http.MethodGet, "/api/recipes/recommendations", nil), "user-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if after := testutil.ToFloat64(metrics.RecommendationsTotal); after < before+1 {
		t.Errorf("recommendations_total did not increase")
	}

	items := decodeEnvelope[ItemsResponse[RecommendationView]](t, w.Body.Bytes()).Data.Items
	if len(items) != 3 {
		t.Fatalf("len = %d, want default top 3", len(items))
	}

	want := []struct {
		id         string
		pct        int
		badge      string
		color      string
		background string
		difficulty string
		missing    int
	}{
		{"full", 100, "모두 보유!", "#10B981", "#F0FDF4", "easy", 0},
		{"half", 50, "재료가 절반만 있네요!", "#F59E0B", "#FFFBEB", "normal", 1},
		{"low", 25, "재료가 부족해요!", "#EF4444", "#FEF2F2", "hard", 3},
	}
	for i, w := range want {
		got := items[i]
		if got.Rank != i+1 || got.ID != w.id || got.Percentage != w.pct {
			t.Errorf("#%d = rank %d %s %d%%, want %s %d%%", i, got.Rank, got.ID, got.Percentage, w.id, w.pct)
		}
		if got.Badge.Text != w.badge || got.Badge.Color != w.color || got.Badge.Background != w.background {
			t.Errorf("#%d badge = %+v", i, got.Badge)
		}
		if got.DifficultyLabel != w.difficulty {
			t.Errorf("#%d difficulty = %q, want %q", i, got.DifficultyLabel, w.difficulty)
		}
		if len(got.MissingIngredients) != w.missing {
			t.Errorf("#%d missing = %d, want %d", i, len(got.MissingIngredients), w.missing)
		}
		if got.AvailableCount+len(got.MissingIngredients) != got.TotalCount {
			t.Errorf("#%d count invariant broken", i)
		}
	}
	if items[0].Badge.Severity != recommend.SeverityPositive {
		t.Errorf("severity = %q", items[0].Badge.Severity)
	}
}

func TestRecommendations_K(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query      string
		wantStatus int
		wantLen    int
		wantCode   string
	}{
		{"?k=1", http.StatusOK, 1, ""},
		{"?k=2", http.StatusOK, 2, ""},
		{"?k=50", http.StatusOK, 4, ""},
		{"?k=", http.StatusOK, 3, ""},
		{"?k=0", http.StatusBadRequest, 0, ErrCodeValidationFailed},
		{"?k=-2", http.StatusBadRequest, 0, ErrCodeValidationFailed},
		{"?k=abc", http.StatusBadRequest, 0, ErrCodeBadRequest},
		{"?k=1.5", http.StatusBadRequest, 0, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, pantryWithEggAndMilk(), &fakeSource{recipes: testCatalog()}, nil)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/recipes/recommendations"+tt.query, nil)
			h.Recommendations(w, withUser(r, "user-1"))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				assertError(t, w.Body.Bytes(), tt.wantCode, "")
				return
			}
			if n := len(decodeEnvelope[ItemsResponse[RecommendationView]](t, w.Body.Bytes()).Data.Items); n != tt.wantLen {
				t.Errorf("len = %d, want %d", n, tt.wantLen)
			}
		})
	}
}

func TestRecommendations_EmptyPantryAndCatalog(t *testing.T) {
	t.Parallel()

	t.Run("empty pantry ranks everything at zero", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, newFakeStore(), &fakeSource{recipes: testCatalog()}, nil)
		w := httptest.NewRecorder()
		h.Recommendations(w, withUser(httptest.NewRequest(http.MethodGet, "/x", nil), "user-1"))

		items := decodeEnvelope[ItemsResponse[RecommendationView]](t, w.Body.Bytes()).Data.Items
		if len(items) != 3 {
			t.Fatalf("len = %d, want 3", len(items))
		}
		// Stable ties keep catalog order.
		for i, id := range []string{"low", "full", "half"} {
			if items[i].ID != id || items[i].Percentage != 0 {
				t.Errorf("#%d = %s %d%%, want %s 0%%", i, items[i].ID, items[i].Percentage, id)
			}
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, pantryWithEggAndMilk(), &fakeSource{}, nil)
		w := httptest.NewRecorder()
		h.Recommendations(w, withUser(httptest.NewRequest(http.MethodGet, "/x", nil), "user-1"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if n := len(decodeEnvelope[ItemsResponse[RecommendationView]](t, w.Body.Bytes()).Data.Items); n != 0 {
			t.Errorf("len = %d, want 0", n)
		}
	})
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	listFail := pantryWithEggAndMilk()
	listFail.listErr = errBoom

	tests := []struct {
		name       string
		store      *fakeStore
		sourceErr  error
		user       string
		wantStatus int
		wantCode   string
	}{
		{"no user", pantryWithEggAndMilk(), nil, "", http.StatusUnauthorized, ErrCodeUnauthorized},
		{"pantry failure", listFail, nil, "user-1", http.StatusInternalServerError, ErrCodeDatabaseError},
		{"breaker open", pantryWithEggAndMilk(), fmt.Errorf("wrapped: %w", catalog.ErrCircuitOpen), "user-1", http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"upstream failure", pantryWithEggAndMilk(), catalog.ErrUpstream, "user-1", http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"rate limited past deadline", pantryWithEggAndMilk(), fmt.Errorf("%w: rate limiter: %w", catalog.ErrUpstream, errors.New("rate: Wait(n=1) would exceed context deadline")), "user-1", http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"catalog storage failure", pantryWithEggAndMilk(), errBoom, "user-1", http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, tt.store, &fakeSource{recipes: testCatalog(), err: tt.sourceErr}, nil)
			r := httptest.NewRequest(http.MethodGet, "/api/recipes/recommendations", nil)
			if tt.user != "" {
				r = withUser(r, tt.user)
			}
			w := httptest.NewRecorder()
			h.Recommendations(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			assertError(t, w.Body.Bytes(), tt.wantCode, "")
		})
	}
}

func TestListRecipes_UpstreamUnavailable(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeStore(), &fakeSource{err: catalog.ErrCircuitOpen}, nil)
	w := httptest.NewRecorder()
	h.ListRecipes(w, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	assertError(t, w.Body.Bytes(), ErrCodeServiceUnavailable, MessageServerError)
}

func TestCatalogLoad_Timeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		call   func(h *Handler, w http.ResponseWriter)
		target string
	}{
		{"list recipes", func(h *Handler, w http.ResponseWriter) {
			h.ListRecipes(w, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))
		}, "/api/recipes"},
		{"recommendations", func(h *Handler, w http.ResponseWriter) {
			r := withUser(httptest.NewRequest(http.MethodGet, "/api/recipes/recommendations", nil), "user-1")
			h.Recommendations(w, r)
		}, "/api/recipes/recommendations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, pantryWithEggAndMilk(), &fakeSource{hang: true}, nil)
			h.timeout = 50 * time.Millisecond

			w := httptest.NewRecorder()
			start := time.Now()
			tt.call(h, w)

			if elapsed := time.Since(start); elapsed > 2*time.Second {
				t.Errorf("%s took %v, want it bounded by the fetch timeout", tt.target, elapsed)
			}
			if w.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", w.Code)
			}
			assertError(t, w.Body.Bytes(), ErrCodeServiceUnavailable, MessageServerError)
		})
	}
}

func TestNewHandler_DefaultFetchTimeout(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeStore(), &fakeSource{}, nil)
	if h.timeout != DefaultFetchTimeout {
		t.Errorf("timeout = %v, want %v", h.timeout, DefaultFetchTimeout)
	}
}

func TestNewBadgeView(t *testing.T) {
	t.Parallel()

	v := NewBadgeView(recommend.ClassifyAvailability(80, recommend.DefaultThresholds()))
	if v.Label != recommend.LabelFullyAvailable || v.Text != "모두 보유!" {
		t.Errorf("badge at 80%% = %+v", v)
	}
	v = NewBadgeView(recommend.ClassifyAvailability(79, recommend.DefaultThresholds()))
	if v.Severity != recommend.SeverityWarning || v.Color != "#F59E0B" {
		t.Errorf("badge at 79%% = %+v", v)
	}
}

func TestRecommendationView_Helpers(t *testing.T) {
	t.Parallel()

	v := RecommendationView{
		Ingredients:        []models.RecipeIngredient{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}},
		MissingIngredients: []models.RecipeIngredient{{Name: "d"}, {Name: "e"}},
	}
	if got := v.MainIngredients(); len(got) != 4 || got[3] != "d" {
		t.Errorf("MainIngredients() = %v", got)
	}
	if got := v.MissingNames(); len(got) != 2 || got[0] != "d" {
		t.Errorf("MissingNames() = %v", got)
	}
	if got := (RecommendationView{}).MainIngredients(); len(got) != 0 {
		t.Errorf("empty MainIngredients() = %v", got)
	}
}
