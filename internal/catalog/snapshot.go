// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fridgechef/internal/models"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no catalog snapshot")

var snapshotKey = []byte("catalog:snapshot")

// Snapshot is the last catalog fetched successfully from upstream.
type Snapshot struct {
	SavedAt time.Time       `json:"saved_at"`
	Source  string          `json:"source"`
	Recipes []models.Recipe `json:"recipes"`
}

// SnapshotStore persists the last good catalog in BadgerDB.
type SnapshotStore struct {
	db *badger.DB
}

// NewSnapshotStore wraps db. The store does not own db and never closes it.
func NewSnapshotStore(db *badger.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save replaces the stored snapshot.
func (s *SnapshotStore) Save(ctx context.Context, source string, recipes []models.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(Snapshot{
		SavedAt: time.Now().UTC(),
		Source:  source,
		Recipes: recipes,
	})
	if err != nil {
		return fmt.Errorf("failed to encode catalog snapshot: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, data)
	})
}

// Load returns the stored snapshot or ErrNoSnapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var snap Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
