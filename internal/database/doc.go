// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

// Package database is the DuckDB storage layer for pantry items and the recipe catalog.
//
// # Overview
//
// DuckDB runs in-process through the database/sql driver
// github.com/duckdb/duckdb-go/v2. The schema is created on every start with
// IF NOT EXISTS statements, so there are no migrations.
//
// Files:
//   - database.go: lifecycle (New, Ping, Close)
//   - database_connection.go: pool sizing, default query timeouts, query metrics
//   - database_schema.go: table definitions
//   - pantry.go: ListPantryItems, CreatePantryItem
//   - recipes.go: ListRecipes, GetRecipe, CreateRecipe, CountRecipes
//   - seed.go: the starter catalog and SeedRecipes
//
// # Ordering
//
// Pantry items are listed soonest expiry first with undated items last, then
// newest first. Recipes are listed in insertion order through the seq column,
// which the recommendation ranker relies on for stable tie-breaking.
//
// # Metrics
//
// Every public query records fridgechef_db_query_duration_seconds and, on
// failure, fridgechef_db_query_errors_total.
//
// # Testing
//
// Tests use ":memory:" databases behind a package semaphore:
//
//	db := setupTestDB(t)
//	items, err := db.ListPantryItems(ctx, "user-1")
package database
