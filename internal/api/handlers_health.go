// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/fridgechef/internal/logging"
)

// healthPingTimeout bounds the database ping.
const healthPingTimeout = 2 * time.Second

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime_seconds"`
}

// Health reports liveness. It answers 503 when the database does not ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	err := h.store.Ping(ctx)
	health := HealthStatus{
		Status:            "healthy",
		DatabaseConnected: err == nil,
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check: database ping failed")
		health.Status = "degraded"
		rw.writeJSON(http.StatusServiceUnavailable, APIResponse{
			Success: false,
			Data:    health,
			Error: &APIError{
				Code:      ErrCodeServiceUnavailable,
				Message:   MessageServerError,
				RequestID: logging.RequestIDFromContext(r.Context()),
			},
			Meta: rw.meta(),
		})
		return
	}

	rw.Success(health)
}
