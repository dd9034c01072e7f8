// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/catalog"
	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/models"
	"github.com/tomtom215/fridgechef/internal/recommend"
)

// DefaultFetchTimeout bounds the data loads behind one request when the
// configuration does not set recommend.timeout.
const DefaultFetchTimeout = 10 * time.Second

// Store is the storage dependency of Handler.
type Store interface {
	ListPantryItems(ctx context.Context, userID string) ([]models.PantryItem, error)
	CreatePantryItem(ctx context.Context, item *models.PantryItem) (*models.PantryItem, error)
	Ping(ctx context.Context) error
}

// TokenRevoker revokes the caller's token on logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, claims *auth.Claims) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_ingredients.go: pantry list and create
//   - handlers_recipes.go: catalog and recommendations
//   - handlers_pages.go: server-rendered recommendations page
//   - handlers_auth.go: logout
//   - handlers_health.go: liveness
type Handler struct {
	store      Store
	recipes    catalog.Source
	revoker    TokenRevoker
	topK       int
	timeout    time.Duration
	thresholds recommend.Thresholds
	pages      *template.Template
	startTime  time.Time
	now        func() time.Time
}

// NewHandler creates the API handler. revoker may be nil, which makes logout
// a no-op for tokens.
func NewHandler(store Store, recipes catalog.Source, revoker TokenRevoker, cfg *config.RecommendConfig) (*Handler, error) {
	if store == nil || recipes == nil {
		return nil, fmt.Errorf("api handler requires a store and a recipe source")
	}

	pages, err := parsePageTemplates()
	if err != nil {
		return nil, err
	}

	topK := cfg.TopK
	if topK < 1 {
		topK = recommend.DefaultTopK
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &Handler{
		store:      store,
		recipes:    recipes,
		revoker:    revoker,
		topK:       topK,
		timeout:    timeout,
		thresholds: recommend.Thresholds{Full: cfg.FullThreshold, Half: cfg.HalfThreshold},
		pages:      pages,
		startTime:  time.Now(),
		now:        time.Now,
	}, nil
}

// fetchContext bounds the pantry and catalog loads of one request.
func (h *Handler) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.timeout)
}
