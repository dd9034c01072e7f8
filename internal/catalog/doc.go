// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package catalog supplies the recipe catalog to the recommendation ranker.

Two sources implement Source:

  - DatabaseSource reads the DuckDB recipes table.
  - RemoteSource fetches a JSON array of recipes over HTTP.

RemoteSource is guarded by a sony/gobreaker circuit breaker (trips at 60%
failures over at least 10 requests, half-opens after two minutes) and a
token-bucket rate limiter. Each successful fetch is written to a Badger
snapshot; when the breaker is open or the upstream fails, the last snapshot
is served instead and a warning is logged. Without a snapshot the error is
returned, wrapping ErrCircuitOpen or ErrUpstream.

Every source passes its output through Normalize, so the ranker always sees
trimmed names, difficulty within 1..5 and non-negative counts.
*/
package catalog
