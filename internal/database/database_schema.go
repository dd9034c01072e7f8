// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
database_schema.go - Database Schema Management

Tables:
  - pantry_items: per-user stock with optional purchase and expiry dates
  - recipes: catalog entries, ordered by the seq column
  - recipe_ingredients: ordered ingredient lines keyed by (recipe_id, position)

All statements use IF NOT EXISTS so createTables is safe on every start.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS pantry_items (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'OTHER',
			quantity DOUBLE NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT '',
			purchased_at TIMESTAMP,
			expires_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pantry_items_user ON pantry_items(user_id)`,

		`CREATE SEQUENCE IF NOT EXISTS recipes_seq START 1`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			seq BIGINT NOT NULL DEFAULT nextval('recipes_seq'),
			name TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			difficulty INTEGER NOT NULL DEFAULT 1,
			cooking_time INTEGER NOT NULL DEFAULT 0,
			servings INTEGER NOT NULL DEFAULT 0,
			user_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			quantity DOUBLE,
			unit TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (recipe_id, position)
		)`,
	}
}
