// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package config loads and validates Fridgechef configuration.

Sources are layered with koanf, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file found through CONFIG_PATH or DefaultConfigPaths
 3. Environment variables

Environment variables are mapped explicitly (envTransformFunc); anything not
in the table is ignored. Common variables:

	HTTP_PORT, HTTP_HOST, ENVIRONMENT
	DUCKDB_PATH, DUCKDB_MAX_MEMORY, SEED_RECIPES
	AUTH_MODE (jwt|none), JWT_SECRET, JWT_ISSUER, DEV_USER_ID
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
	CATALOG_SOURCE (database|remote), CATALOG_REMOTE_URL, CATALOG_SNAPSHOT_PATH
	RECOMMEND_TOP_K, RECOMMEND_FULL_THRESHOLD, RECOMMEND_HALF_THRESHOLD
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Example YAML:

	server:
	  port: 8080
	security:
	  auth_mode: jwt
	  jwt_secret: "change-me-to-a-32-character-secret"
	catalog:
	  source: remote
	  remote_url: https://recipes.example.com/api/recipes
	recommend:
	  top_k: 3
*/
package config
