// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/fridgechef/internal/models"
)

const pantryColumns = `id, user_id, name, category, quantity, unit, purchased_at, expires_at, created_at`

// ListPantryItems returns a user's items, soonest expiry first with undated
// items last, then newest first.
func (db *DB) ListPantryItems(ctx context.Context, userID string) (items []models.PantryItem, err error) {
	defer observe("SELECT", "pantry_items", time.Now(), &err)

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+pantryColumns+`
		FROM pantry_items
		WHERE user_id = ?
		ORDER BY expires_at ASC NULLS LAST, created_at DESC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry items: %w", err)
	}
	defer closeWithLog(rows, "pantry rows")

	items = make([]models.PantryItem, 0)
	for rows.Next() {
		item, err := scanPantryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pantry items: %w", err)
	}
	return items, nil
}

// CreatePantryItem stores item and returns the stored row. ID and CreatedAt
// are assigned when empty; Category falls back to OTHER when invalid.
func (db *DB) CreatePantryItem(ctx context.Context, item *models.PantryItem) (stored *models.PantryItem, err error) {
	defer observe("INSERT", "pantry_items", time.Now(), &err)

	if item.UserID == "" {
		return nil, ErrMissingUserID
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	row := *item
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if !row.Category.Valid() {
		row.Category = models.CategoryOther
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO pantry_items (`+pantryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.UserID, row.Name, string(row.Category), row.Quantity, row.Unit,
		nullTime(row.PurchasedAt), nullTime(row.ExpiresAt), row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pantry item: %w", err)
	}

	return db.getPantryItem(ctx, row.ID)
}

func (db *DB) getPantryItem(ctx context.Context, id string) (*models.PantryItem, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+pantryColumns+` FROM pantry_items WHERE id = ?`, id)
	item, err := scanPantryItem(row)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPantryItem(s rowScanner) (models.PantryItem, error) {
	var (
		item      models.PantryItem
		category  string
		purchased sql.NullTime
		expires   sql.NullTime
	)
	err := s.Scan(&item.ID, &item.UserID, &item.Name, &category, &item.Quantity, &item.Unit,
		&purchased, &expires, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return item, ErrNotFound
	}
	if err != nil {
		return item, fmt.Errorf("failed to scan pantry item: %w", err)
	}
	item.Category = models.Category(category)
	item.PurchasedAt = timePtr(purchased)
	item.ExpiresAt = timePtr(expires)
	item.CreatedAt = item.CreatedAt.UTC()
	return item, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}
