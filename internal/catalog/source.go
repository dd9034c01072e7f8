// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/metrics"
	"github.com/tomtom215/fridgechef/internal/models"
)

var (
	// ErrCircuitOpen is returned when the remote catalog breaker rejects a call.
	ErrCircuitOpen = errors.New("catalog circuit breaker is open")

	// ErrUpstream is returned when the remote catalog fails or returns bad data.
	ErrUpstream = errors.New("catalog upstream error")
)

// Source lists the recipe catalog in catalog order.
type Source interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
}

// RecipeStore is the storage dependency of DatabaseSource.
type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
}

// DatabaseSource serves the catalog from local storage.
type DatabaseSource struct {
	store RecipeStore
}

// NewDatabaseSource creates a Source backed by store.
func NewDatabaseSource(store RecipeStore) *DatabaseSource {
	return &DatabaseSource{store: store}
}

// ListRecipes returns the normalized stored catalog.
func (s *DatabaseSource) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.store.ListRecipes(ctx)
	if err != nil {
		metrics.RecordCatalogFetch(config.CatalogSourceDatabase, "error")
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}
	metrics.RecordCatalogFetch(config.CatalogSourceDatabase, "ok")
	return Normalize(recipes), nil
}

// New builds the Source selected by cfg.Source. snapshots may be nil, which
// disables fallback for the remote source.
func New(cfg *config.CatalogConfig, store RecipeStore, snapshots *SnapshotStore) (Source, error) {
	switch cfg.Source {
	case "", config.CatalogSourceDatabase:
		return NewDatabaseSource(store), nil
	case config.CatalogSourceRemote:
		return NewRemoteSource(cfg, snapshots), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
