// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package cache provides a thread-safe, typed in-memory cache with TTL expiry.

It fronts the recipe catalog so repeated recommendation requests do not hit
DuckDB or the remote catalog service on every call.

# Usage

	c := cache.New[[]models.Recipe](30 * time.Second)
	c.Set("catalog", recipes)
	if recipes, ok := c.Get("catalog"); ok {
	    // cache hit
	}

Expired entries are removed lazily on Get. Serve runs a periodic sweep and is
registered with the process supervisor.

# Thread Safety

All methods are safe for concurrent use. Entries share the stored value, so
callers must not mutate values after Set or after Get.
*/
package cache
