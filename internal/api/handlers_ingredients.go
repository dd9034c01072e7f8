// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/models"
	"github.com/tomtom215/fridgechef/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// ItemsResponse wraps list payloads.
type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

// ListIngredients returns the caller's pantry, soonest expiry first.
func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		rw.Unauthorized()
		return
	}

	items, err := h.store.ListPantryItems(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	today := h.now()
	views := make([]models.PantryItemView, 0, len(items))
	for i := range items {
		views = append(views, items[i].View(today))
	}

	rw.Success(ItemsResponse[models.PantryItemView]{Items: views})
}

// CreateIngredient adds an item to the caller's pantry.
func (h *Handler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		rw.Unauthorized()
		return
	}

	var req validation.CreatePantryItemRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Malformed ingredient body")
		rw.BadRequest(MessageRequiredMissing)
		return
	}

	req.Normalize()
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	stored, err := h.store.CreatePantryItem(r.Context(), req.ToPantryItem(userID))
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("item_id", stored.ID).
		Str("category", string(stored.Category)).
		Msg("Pantry item created")

	rw.Created(stored.View(h.now()))
}
