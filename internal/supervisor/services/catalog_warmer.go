// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package services

import (
	"context"
	"time"

	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/models"
)

// CatalogRefresher reloads the catalog from upstream, bypassing any cached
// copy. *catalog.CachedSource implements it.
type CatalogRefresher interface {
	Refresh(ctx context.Context) ([]models.Recipe, error)
}

// CatalogWarmerService periodically refreshes the recipe catalog so the
// in-memory cache and the remote snapshot stay fresh between requests.
// Every tick reaches upstream. Run it at an interval shorter than the cache
// TTL so requests never see an expired entry. Fetch failures are logged and
// retried on the next tick; they never stop the service.
type CatalogWarmerService struct {
	source   CatalogRefresher
	interval time.Duration
	name     string
}

// NewCatalogWarmerService creates a warmer that fetches once on start and
// then every interval. A non-positive interval uses one minute.
func NewCatalogWarmerService(source CatalogRefresher, interval time.Duration) *CatalogWarmerService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CatalogWarmerService{
		source:   source,
		interval: interval,
		name:     "catalog-warmer",
	}
}

// Serve implements suture.Service.
func (s *CatalogWarmerService) Serve(ctx context.Context) error {
	s.warm(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

func (s *CatalogWarmerService) warm(ctx context.Context) {
	recipes, err := s.source.Refresh(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Str("service", s.name).Msg("Catalog warm-up failed")
		}
		return
	}
	logging.Debug().Int("recipes", len(recipes)).Msg("Catalog warmed")
}

// String implements fmt.Stringer for suture log messages.
func (s *CatalogWarmerService) String() string {
	return s.name
}
