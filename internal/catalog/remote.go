// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/metrics"
	"github.com/tomtom215/fridgechef/internal/models"
)

const (
	// BreakerName labels the remote catalog breaker in metrics and logs.
	BreakerName = "recipe-catalog"

	defaultRemoteTimeout = 10 * time.Second

	// maxErrorBodySize bounds how much of an error response is kept for diagnostics.
	maxErrorBodySize = 4 * 1024

	// maxCatalogSize bounds the decoded response body.
	maxCatalogSize = 16 << 20
)

// RemoteSource fetches the catalog from an HTTP endpoint returning a JSON array
// of recipes.
type RemoteSource struct {
	url       string
	client    *http.Client
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[[]models.Recipe]
	snapshots *SnapshotStore
}

// NewRemoteSource creates a remote catalog client. A non-positive
// cfg.RateLimit disables rate limiting. snapshots may be nil.
func NewRemoteSource(cfg *config.CatalogConfig, snapshots *SnapshotStore) *RemoteSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	limit := rate.Inf
	burst := cfg.RateBurst
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	if burst <= 0 {
		burst = 1
	}

	return &RemoteSource{
		url:       cfg.RemoteURL,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, burst),
		breaker:   newBreaker(BreakerName),
		snapshots: snapshots,
	}
}

// ListRecipes fetches and normalizes the remote catalog. On upstream failure
// or an open breaker it serves the last snapshot when one exists.
func (s *RemoteSource) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		// Wait fails early when the deadline cannot cover the next token.
		return s.fallback(ctx, fmt.Errorf("%w: rate limiter: %w", ErrUpstream, err))
	}

	recipes, err := s.breaker.Execute(func() ([]models.Recipe, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return s.fallback(ctx, s.classify(err))
	}

	metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "success").Inc()
	metrics.RecordCatalogFetch(config.CatalogSourceRemote, "ok")

	recipes = Normalize(recipes)
	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, config.CatalogSourceRemote, recipes); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to save catalog snapshot")
		}
	}
	return recipes, nil
}

// classify maps breaker and transport errors onto the package sentinels.
func (s *RemoteSource) classify(err error) error {
	if isRejected(err) {
		metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "rejected").Inc()
		return fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "failure").Inc()
	if errors.Is(err, ErrUpstream) || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

func (s *RemoteSource) fallback(ctx context.Context, cause error) ([]models.Recipe, error) {
	if s.snapshots == nil || errors.Is(cause, context.Canceled) {
		metrics.RecordCatalogFetch(config.CatalogSourceRemote, "error")
		return nil, cause
	}

	// The caller's context may already be done; the snapshot is local.
	snap, err := s.snapshots.Load(context.WithoutCancel(ctx))
	if err != nil {
		metrics.RecordCatalogFetch(config.CatalogSourceRemote, "error")
		if !errors.Is(err, ErrNoSnapshot) {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to load catalog snapshot")
		}
		return nil, cause
	}

	metrics.RecordCatalogFetch(config.CatalogSourceRemote, "snapshot")
	logging.Ctx(ctx).Warn().
		Err(cause).
		Time("snapshot_saved_at", snap.SavedAt).
		Int("recipes", len(snap.Recipes)).
		Msg("Remote catalog unavailable, serving snapshot")

	return Normalize(snap.Recipes), nil
}

func (s *RemoteSource) fetch(ctx context.Context) ([]models.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, body)
	}

	var recipes []models.Recipe
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogSize)).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %w", ErrUpstream, err)
	}
	return recipes, nil
}
