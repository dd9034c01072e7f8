// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"net/http"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/logging"
)

// LogoutResponse reports whether the presented token was revoked.
type LogoutResponse struct {
	Revoked bool `json:"revoked"`
}

// Logout revokes the caller's token until it expires and clears the token
// cookie. Without token claims (auth_mode=none) nothing is revoked.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		rw.Unauthorized()
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil || h.revoker == nil {
		rw.Success(LogoutResponse{Revoked: false})
		return
	}

	if err := h.revoker.Revoke(r.Context(), claims); err != nil {
		rw.InternalError(err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("jti", claims.ID).Msg("Token revoked on logout")
	rw.Success(LogoutResponse{Revoked: true})
}
