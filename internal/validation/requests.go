// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package validation

import (
	"strings"

	"github.com/tomtom215/fridgechef/internal/models"
)

// CreatePantryItemRequest is the body of POST /api/ingredients. Category is
// the display label (e.g. "야채"); unknown labels are stored as OTHER.
type CreatePantryItemRequest struct {
	Name         string  `json:"name" validate:"notblank,max=100"`
	Category     string  `json:"category" validate:"notblank,max=20"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	Unit         string  `json:"unit" validate:"notblank,max=20"`
	PurchaseDate string  `json:"purchaseDate" validate:"omitempty,calendardate"`
	ExpiryDate   string  `json:"expiryDate" validate:"omitempty,calendardate"`
}

// Normalize trims free-text fields in place. Call before ValidateStruct so
// length limits apply to the stored value.
func (r *CreatePantryItemRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
	r.PurchaseDate = strings.TrimSpace(r.PurchaseDate)
	r.ExpiryDate = strings.TrimSpace(r.ExpiryDate)
}

// ToPantryItem converts a validated request. Dates were checked by
// ValidateStruct, so parse errors cannot occur here.
func (r *CreatePantryItemRequest) ToPantryItem(userID string) *models.PantryItem {
	purchased, _ := models.ParseDate(r.PurchaseDate)
	expires, _ := models.ParseDate(r.ExpiryDate)
	return &models.PantryItem{
		UserID:      userID,
		Name:        r.Name,
		Category:    models.ParseCategoryLabel(r.Category),
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		PurchasedAt: purchased,
		ExpiresAt:   expires,
	}
}

// RecommendationsRequest holds the query of GET /api/recipes/recommendations.
// K has no upper bound; the ranker caps it at the catalog size.
type RecommendationsRequest struct {
	K int `json:"k" validate:"gte=1"`
}
