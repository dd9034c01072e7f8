// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package auth identifies the user behind each request.

Fridgechef does not log users in itself. An external identity provider issues
HS256 JWTs signed with the shared JWT_SECRET, and this package verifies them.

Key Components:

  - Verifier: checks signature, algorithm, expiry, issuer, subject and revocation
  - Middleware: reads the bearer token (or the "token" cookie) and stores the
    user ID in the request context
  - RevocationStore: revoked token IDs (jti), kept in Badger until the token
    would have expired anyway

Authentication Modes (AUTH_MODE):

  - jwt (default): every protected request needs a valid token
  - none: every request runs as DEV_USER_ID; rejected in production by config

Handlers read the caller with UserIDFromContext:

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
	    // 401
	}
*/
package auth
