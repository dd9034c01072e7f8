// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package api provides the HTTP surface of Fridgechef on a chi router.

# Routes

	GET  /health                        liveness, pings DuckDB
	GET  /metrics                       Prometheus exposition
	GET  /api/recipes                   normalized recipe catalog (public)
	GET  /api/ingredients               caller's pantry (auth)
	POST /api/ingredients               add a pantry item (auth)
	GET  /api/recipes/recommendations   top-K recipes by availability (auth)
	POST /api/auth/logout               revoke the caller's token (auth)
	GET  /recipes                       server-rendered recommendations page (auth)

# Response Format

JSON endpoints share one envelope:

	{
	  "success": true,
	  "data": {"items": [...]},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors set success=false and carry error{code, message, details, request_id}.
Codes are VALIDATION_ERROR, BAD_REQUEST, UNAUTHORIZED, NOT_FOUND,
METHOD_NOT_ALLOWED, RATE_LIMIT_EXCEEDED, INTERNAL_ERROR, DATABASE_ERROR and
SERVICE_UNAVAILABLE. User-facing messages are Korean: 로그인이 필요합니다.
for 401, 필수 값 누락 for missing fields and 서버 오류 for server failures.

# Middleware

Global: request ID, real IP, access log, panic recovery, CORS, security
headers, Prometheus metrics. API routes add an httprate limiter keyed by IP
and response compression; protected routes add auth.Middleware.
*/
package api
