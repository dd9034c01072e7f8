// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package auth

import (
	"context"

	"github.com/tomtom215/fridgechef/internal/logging"
)

type contextKey string

const (
	userIDKey contextKey = "auth_user_id"
	claimsKey contextKey = "auth_claims"
)

// ContextWithUserID stores the authenticated user ID, also exposing it to
// logging.Ctx.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return logging.ContextWithUserID(ctx, userID)
}

// UserIDFromContext returns the authenticated user ID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// ContextWithClaims stores verified token claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified claims. It is nil when the request was
// authenticated without a token (AUTH_MODE=none).
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}
