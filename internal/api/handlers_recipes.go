// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/catalog"
	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/metrics"
	"github.com/tomtom215/fridgechef/internal/models"
	"github.com/tomtom215/fridgechef/internal/recommend"
	"github.com/tomtom215/fridgechef/internal/validation"
)

// errStorage marks pantry load failures so they map to DATABASE_ERROR.
var errStorage = errors.New("pantry storage error")

// ListRecipes returns the normalized recipe catalog.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := h.fetchContext(r.Context())
	defer cancel()

	recipes, err := h.recipes.ListRecipes(ctx)
	if err != nil {
		h.writeLoadError(rw, err)
		return
	}

	rw.Success(ItemsResponse[models.Recipe]{Items: recipes})
}

// Recommendations ranks the catalog against the caller's pantry.
// Query: k (optional, >= 1, defaults to the configured top K).
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		rw.Unauthorized()
		return
	}

	k, err := h.parseTopK(r.URL.Query().Get("k"))
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&validation.RecommendationsRequest{K: k}); verr != nil {
		rw.ValidationError(verr)
		return
	}

	views, err := h.recommend(r.Context(), userID, k)
	if err != nil {
		h.writeLoadError(rw, err)
		return
	}

	rw.Success(ItemsResponse[RecommendationView]{Items: views})
}

// parseTopK reads the k query parameter, defaulting to the configured value.
func (h *Handler) parseTopK(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.topK, nil
	}
	k, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("k must be an integer, got %q", raw)
	}
	return k, nil
}

// recommend loads the pantry and catalog and returns the top k views.
func (h *Handler) recommend(ctx context.Context, userID string, k int) ([]RecommendationView, error) {
	ctx, cancel := h.fetchContext(ctx)
	defer cancel()

	pantry, err := h.store.ListPantryItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errStorage, err)
	}

	recipes, err := h.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	views := newRecommendationViews(recommend.RankRecipes(recipes, pantry, k), h.thresholds)
	metrics.RecordRecommendations(percentages(views))

	logging.Ctx(ctx).Debug().
		Int("pantry_items", len(pantry)).
		Int("catalog_size", len(recipes)).
		Int("returned", len(views)).
		Msg("Recommendations computed")

	return views, nil
}

// writeLoadError maps pantry and catalog failures onto responses.
func (h *Handler) writeLoadError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, errStorage):
		rw.DatabaseError(err)
	case errors.Is(err, catalog.ErrCircuitOpen), errors.Is(err, catalog.ErrUpstream),
		errors.Is(err, context.DeadlineExceeded):
		rw.ServiceUnavailable(err)
	default:
		rw.InternalError(err)
	}
}
