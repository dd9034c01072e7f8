// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package main is the entry point for the Fridgechef server.

Fridgechef tracks the ingredients a user keeps at home and ranks the recipe
catalog by how much of each recipe the pantry already covers.

# Startup

 1. Configuration: koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog, JSON or console output
 3. Database: DuckDB, starter recipes seeded when SEED_RECIPES=true
 4. Catalog: local database or remote endpoint, with Badger snapshots and
    an in-memory cache
 5. Authentication: JWT with a Badger revocation store, or none for local use
 6. Supervisor tree: suture v4 running the cache sweep, catalog warmer and
    HTTP server

# Configuration

	HTTP_PORT=8080
	DUCKDB_PATH=/data/fridgechef.duckdb
	SEED_RECIPES=true

	AUTH_MODE=jwt                # jwt or none
	JWT_SECRET=<32+ chars>
	DEV_USER_ID=<uuid>           # user for AUTH_MODE=none
	REVOCATION_PATH=/data/revocations

	CATALOG_SOURCE=database      # database or remote
	CATALOG_REMOTE_URL=https://recipes.example.com/recipes
	CATALOG_SNAPSHOT_PATH=/data/catalog
	CATALOG_CACHE_TTL=30s

	RECOMMEND_TOP_K=3
	LOG_LEVEL=info
	LOG_FORMAT=json

A YAML file named by CONFIG_PATH is loaded below the environment.

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10 seconds, then DuckDB and the Badger stores
are closed.
*/
package main
