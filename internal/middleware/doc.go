// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package middleware provides HTTP middleware shared by every Fridgechef route.

All middleware uses the chi signature func(http.Handler) http.Handler so it can
be mounted with router.Use.

Key Components:

  - RequestID: honors or generates X-Request-ID and stores it for logging
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - SecurityHeaders: nosniff, frame denial, referrer policy and HSTS behind TLS
  - AccessLog: one structured zerolog line per request

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

See Also:

  - internal/auth: authentication middleware
  - internal/metrics: collector definitions
*/
package middleware
