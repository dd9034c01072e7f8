// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package services adapts Fridgechef components to suture's Serve pattern.

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService translates the blocking ListenAndServe/Shutdown pair into
Serve. Cancelling the context triggers a graceful shutdown bounded by the
configured timeout.

CatalogWarmerService refreshes the cached recipe catalog from upstream on start
and then at half the cache TTL. It is only registered when the catalog comes
from a remote endpoint, where it keeps the circuit breaker exercised and the
Badger snapshot current.

Return values drive supervisor behavior:

	nil         -> stopped cleanly, not restarted
	error       -> crashed, restarted with backoff
	ctx.Err()   -> shutdown requested

Each service implements fmt.Stringer so suture events name it.
*/
package services
