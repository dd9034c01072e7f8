// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package catalog

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
)

// newTestSnapshotStore returns a snapshot store over in-memory Badger.
func newTestSnapshotStore(t *testing.T) *SnapshotStore {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewSnapshotStore(db)
}
