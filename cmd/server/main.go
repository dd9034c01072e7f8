// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/fridgechef/internal/api"
	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/database"
	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/supervisor"
	"github.com/tomtom215/fridgechef/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Str("catalog_source", cfg.Catalog.Source).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Fridgechef")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Fridgechef stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.Seed {
		inserted, err := db.SeedRecipes(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed recipes: %w", err)
		}
		logging.Info().Int("inserted", inserted).Msg("Recipe catalog seeded")
	}

	kv := &stores{}
	defer kv.Close()

	recipes, err := initCatalog(cfg, db, kv)
	if err != nil {
		return err
	}

	authMiddleware, verifier, err := initAuth(cfg, kv)
	if err != nil {
		return err
	}

	var revoker api.TokenRevoker
	if verifier != nil {
		revoker = verifier
	}

	handler, err := api.NewHandler(db, recipes.source, revoker, &cfg.Recommend)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	router := api.NewRouter(
		handler,
		authMiddleware,
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	if recipes.cache != nil {
		tree.AddDataService(recipes.cache)
	}
	if recipes.warmer != nil {
		// Refresh at half the TTL so the cached catalog never expires.
		interval := cfg.Catalog.CacheTTL / 2
		tree.AddDataService(services.NewCatalogWarmerService(recipes.warmer, interval))
		logging.Info().Dur("interval", interval).Msg("Catalog warmer added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if errors.Is(serveErr, context.Canceled) {
		serveErr = nil
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	return serveErr
}
