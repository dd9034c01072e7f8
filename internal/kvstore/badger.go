// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

// Package kvstore opens the BadgerDB instances used for token revocation and
// catalog snapshots.
package kvstore

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/fridgechef/internal/logging"
)

// Open opens a BadgerDB at path. An empty path opens an in-memory store that
// is lost on close.
func Open(path, component string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create badger directory %s: %w", path, err)
		}
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(newBadgerLogger(component))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store for %s: %w", component, err)
	}

	logging.Info().Str("component", component).Str("path", path).Bool("in_memory", path == "").Msg("Badger store opened")
	return db, nil
}

// badgerLogger forwards Badger's printf-style logs to zerolog. Info and debug
// output is demoted so compaction chatter stays out of normal logs.
type badgerLogger struct {
	log zerolog.Logger
}

func newBadgerLogger(component string) *badgerLogger {
	return &badgerLogger{log: logging.WithComponent(component).With().Str("store", "badger").Logger()}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(format, args...)
}
