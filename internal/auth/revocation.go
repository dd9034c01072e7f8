// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fridgechef/internal/logging"
)

// ErrRevocationStoreClosed indicates the store has been closed.
var ErrRevocationStoreClosed = errors.New("revocation store is closed")

// RevokedToken is a stored revocation record.
type RevokedToken struct {
	JTI       string    `json:"jti"`
	Subject   string    `json:"sub"`
	RevokedAt time.Time `json:"revoked_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RevocationStore tracks revoked token IDs until the tokens expire.
type RevocationStore interface {
	// Revoke records jti as revoked until expiresAt. Revoking a token that
	// has already expired is a no-op.
	Revoke(ctx context.Context, jti, subject string, expiresAt time.Time) error

	// IsRevoked reports whether jti is currently revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// Close releases resources. It does not close a shared Badger DB.
	Close() error
}

// MemoryRevocationStore is an in-memory store for tests and AUTH_MODE=none.
// Entries are lost on restart.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]RevokedToken
	closed  bool
}

// NewMemoryRevocationStore creates an empty in-memory store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{entries: make(map[string]RevokedToken)}
}

// Revoke records a revocation.
func (s *MemoryRevocationStore) Revoke(ctx context.Context, jti, subject string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrRevocationStoreClosed
	}
	now := time.Now()
	if !expiresAt.After(now) {
		return nil
	}

	// Opportunistic cleanup keeps the map bounded by live tokens.
	for k, e := range s.entries {
		if now.After(e.ExpiresAt) {
			delete(s.entries, k)
		}
	}

	s.entries[jti] = RevokedToken{JTI: jti, Subject: subject, RevokedAt: now, ExpiresAt: expiresAt}
	return nil
}

// IsRevoked checks for a live revocation.
func (s *MemoryRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, ErrRevocationStoreClosed
	}
	e, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	return time.Now().Before(e.ExpiresAt), nil
}

// Close closes the store.
func (s *MemoryRevocationStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.entries = nil
	return nil
}

// BadgerRevocationStore persists revocations in BadgerDB. Entries carry a
// Badger TTL matching the token's remaining lifetime, so expired records are
// dropped by compaction.
type BadgerRevocationStore struct {
	db     *badger.DB
	prefix []byte
	closed bool
	mu     sync.RWMutex
}

// NewBadgerRevocationStore creates a store over db using keys under prefix
// (default "revoked:").
func NewBadgerRevocationStore(db *badger.DB, prefix string) *BadgerRevocationStore {
	if prefix == "" {
		prefix = "revoked:"
	}
	return &BadgerRevocationStore{
		db:     db,
		prefix: []byte(prefix),
	}
}

func (s *BadgerRevocationStore) makeKey(jti string) []byte {
	key := make([]byte, 0, len(s.prefix)+len(jti))
	key = append(key, s.prefix...)
	return append(key, jti...)
}

func (s *BadgerRevocationStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Revoke records a revocation with a TTL of the token's remaining lifetime.
func (s *BadgerRevocationStore) Revoke(ctx context.Context, jti, subject string, expiresAt time.Time) error {
	if s.isClosed() {
		return ErrRevocationStoreClosed
	}
	now := time.Now()
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(RevokedToken{JTI: jti, Subject: subject, RevokedAt: now, ExpiresAt: expiresAt})
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(s.makeKey(jti), data).WithTTL(ttl))
	})
	if err != nil {
		return err
	}

	logging.Ctx(ctx).Info().Str("jti", jti).Time("expires_at", expiresAt).Msg("Token revoked")
	return nil
}

// IsRevoked checks for a live revocation.
func (s *BadgerRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.isClosed() {
		return false, ErrRevocationStoreClosed
	}

	var revoked bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.makeKey(jti))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var entry RevokedToken
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entry); err != nil {
				return err
			}
			revoked = time.Now().Before(entry.ExpiresAt)
			return nil
		})
	})
	return revoked, err
}

// Close marks the store closed. The Badger DB is owned by the caller.
func (s *BadgerRevocationStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
