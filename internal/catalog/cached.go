// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package catalog

import (
	"context"

	"github.com/tomtom215/fridgechef/internal/cache"
	"github.com/tomtom215/fridgechef/internal/metrics"
	"github.com/tomtom215/fridgechef/internal/models"
)

const cacheKey = "catalog:recipes"

// CachedSource serves a recently fetched catalog from memory. Returned
// slices are shared between callers and must be treated as read-only.
type CachedSource struct {
	next  Source
	cache *cache.Cache[[]models.Recipe]
}

// NewCachedSource wraps next. A nil cache or a non-positive TTL returns next
// unchanged.
func NewCachedSource(next Source, c *cache.Cache[[]models.Recipe]) Source {
	if c == nil || c.TTL() <= 0 {
		return next
	}
	return &CachedSource{next: next, cache: c}
}

// ListRecipes returns the cached catalog or fetches and caches it. Errors
// are never cached.
func (s *CachedSource) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if recipes, ok := s.cache.Get(cacheKey); ok {
		metrics.RecordCatalogFetch("cache", "hit")
		return recipes, nil
	}

	return s.Refresh(ctx)
}

// Refresh fetches the catalog from the wrapped source and replaces the cached
// copy. On error the previous entry is left in place until it expires.
func (s *CachedSource) Refresh(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.next.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKey, recipes)
	return recipes, nil
}
