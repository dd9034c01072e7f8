// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

// Package logging provides zerolog-based structured logging for Fridgechef.
//
// A single global logger is configured once from main and used everywhere
// through package-level helpers. JSON output is the default; console output
// is available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Catalog fetch failed")
//
// Ctx attaches request_id and user_id when the HTTP middleware has stored
// them in the request context.
//
// # slog bridge
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog. The
// supervisor tree uses it for sutureslog event hooks.
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// chain is never written.
package logging
