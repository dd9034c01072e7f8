// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"errors"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/validation"
)

// Common API errors
var (
	// ErrUnauthorized indicates a protected handler ran without an authenticated user.
	ErrUnauthorized = errors.New("authentication required")

	// ErrInvalidInput indicates a malformed or invalid request.
	ErrInvalidInput = errors.New("invalid input")
)

// User-facing messages
const (
	MessageLoginRequired   = auth.LoginRequiredMessage
	MessageRequiredMissing = validation.MessageRequiredMissing
	MessageServerError     = "서버 오류"
)
