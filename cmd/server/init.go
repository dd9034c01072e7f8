// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package main

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/fridgechef/internal/api"
	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/cache"
	"github.com/tomtom215/fridgechef/internal/catalog"
	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/database"
	"github.com/tomtom215/fridgechef/internal/kvstore"
	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/models"
)

const revocationKeyPrefix = "revoked:"

// stores tracks the Badger databases opened during startup so they are
// closed once the supervisor tree has stopped.
type stores struct {
	opened []*badger.DB
}

func (s *stores) open(path, component string) (*badger.DB, error) {
	db, err := kvstore.Open(path, component)
	if err != nil {
		return nil, err
	}
	s.opened = append(s.opened, db)
	return db, nil
}

// Close closes every store in reverse opening order.
func (s *stores) Close() {
	for i := len(s.opened) - 1; i >= 0; i-- {
		if err := s.opened[i].Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing badger store")
		}
	}
	s.opened = nil
}

// catalogSetup is the assembled recipe source with the services that keep it warm.
type catalogSetup struct {
	source catalog.Source
	cache  *cache.Cache[[]models.Recipe]
	// warmer is set for remote catalogs behind the cache.
	warmer *catalog.CachedSource
}

// initCatalog builds the recipe source. Remote catalogs get a Badger snapshot
// store for fallback and a background warmer; any source is fronted by the
// in-memory cache when catalog.cache_ttl is positive.
func initCatalog(cfg *config.Config, db *database.DB, st *stores) (*catalogSetup, error) {
	var snapshots *catalog.SnapshotStore
	remote := cfg.Catalog.Source == config.CatalogSourceRemote
	if remote {
		kv, err := st.open(cfg.Catalog.SnapshotPath, "catalog-snapshot")
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog snapshot store: %w", err)
		}
		snapshots = catalog.NewSnapshotStore(kv)
	}

	src, err := catalog.New(&cfg.Catalog, db, snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe catalog: %w", err)
	}

	setup := &catalogSetup{source: src}
	if cfg.Catalog.CacheTTL > 0 {
		setup.cache = cache.New[[]models.Recipe](cfg.Catalog.CacheTTL)
		setup.source = catalog.NewCachedSource(src, setup.cache)
		if cached, ok := setup.source.(*catalog.CachedSource); ok && remote {
			setup.warmer = cached
		}
	}

	logging.Info().
		Str("source", cfg.Catalog.Source).
		Dur("cache_ttl", cfg.Catalog.CacheTTL).
		Bool("snapshots", snapshots != nil).
		Msg("Recipe catalog initialized")
	return setup, nil
}

// initAuth builds the authentication middleware. In jwt mode it also returns
// the verifier, backed by a Badger revocation store, so logout can revoke
// tokens. In none mode the verifier is nil.
func initAuth(cfg *config.Config, st *stores) (*auth.Middleware, *auth.Verifier, error) {
	var verifier *auth.Verifier
	if cfg.Security.AuthMode != config.AuthModeNone {
		kv, err := st.open(cfg.Security.RevocationPath, "auth-revocation")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open revocation store: %w", err)
		}
		verifier, err = auth.NewVerifier(&cfg.Security, auth.NewBadgerRevocationStore(kv, revocationKeyPrefix))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize token verifier: %w", err)
		}
	}

	mw, err := auth.NewMiddleware(&cfg.Security, verifier, api.WriteUnauthorized)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize authentication: %w", err)
	}
	return mw, verifier, nil
}
