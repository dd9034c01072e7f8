// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/metrics"
)

// LoginRequiredMessage is shown to users without valid credentials.
const LoginRequiredMessage = "로그인이 필요합니다."

// TokenCookieName is the cookie consulted when no Authorization header is sent.
const TokenCookieName = "token"

// UnauthorizedHandler writes the response for a rejected request.
type UnauthorizedHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware authenticates requests according to AUTH_MODE.
type Middleware struct {
	mode           string
	devUserID      string
	verifier       *Verifier
	onUnauthorized UnauthorizedHandler
}

// NewMiddleware creates the authentication middleware. verifier is required
// in jwt mode. onUnauthorized may be nil to use the default JSON response.
func NewMiddleware(cfg *config.SecurityConfig, verifier *Verifier, onUnauthorized UnauthorizedHandler) (*Middleware, error) {
	mode := cfg.AuthMode
	if mode == "" {
		mode = config.AuthModeJWT
	}

	switch mode {
	case config.AuthModeJWT:
		if verifier == nil {
			return nil, fmt.Errorf("auth mode %q requires a token verifier", mode)
		}
	case config.AuthModeNone:
		if cfg.DevUserID == "" {
			return nil, fmt.Errorf("auth mode %q requires a dev user id", mode)
		}
		logging.Warn().Str("dev_user_id", cfg.DevUserID).Msg("Authentication disabled, all requests run as the dev user")
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}

	if onUnauthorized == nil {
		onUnauthorized = writeUnauthorized
	}

	return &Middleware{
		mode:           mode,
		devUserID:      cfg.DevUserID,
		verifier:       verifier,
		onUnauthorized: onUnauthorized,
	}, nil
}

// Authenticate rejects requests without a valid identity and stores the user
// ID (and claims, in jwt mode) in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode == config.AuthModeNone {
			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), m.devUserID)))
			return
		}

		token, err := extractToken(r)
		if err != nil {
			metrics.AuthFailures.WithLabelValues("missing_token").Inc()
			m.onUnauthorized(w, r, err)
			return
		}

		claims, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			reason := "invalid_token"
			if errors.Is(err, ErrRevokedToken) {
				reason = "revoked"
			}
			metrics.AuthFailures.WithLabelValues(reason).Inc()
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token verification failed")
			m.onUnauthorized(w, r, err)
			return
		}

		ctx := ContextWithUserID(r.Context(), claims.Subject)
		ctx = ContextWithClaims(ctx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads a bearer token from the Authorization header, falling
// back to the token cookie.
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: malformed authorization header", ErrMissingToken)
	}
	return strings.TrimSpace(token), nil
}

// writeUnauthorized is the fallback response when no handler is supplied.
func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": LoginRequiredMessage,
		},
	})
}
