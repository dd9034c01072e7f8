// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/fridgechef/internal/config"
	"github.com/tomtom215/fridgechef/internal/logging"
)

var (
	// ErrMissingToken means the request carried no credentials.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken means the token failed verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRevokedToken means the token's jti has been revoked.
	ErrRevokedToken = errors.New("token revoked")
)

// Claims are the JWT claims issued by the identity provider. The user ID is
// the subject.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens.
type Verifier struct {
	secret      []byte
	issuer      string
	revocations RevocationStore
	parser      *jwt.Parser
}

// NewVerifier creates a verifier from security config. revocations may be nil.
func NewVerifier(cfg *config.SecurityConfig, revocations RevocationStore) (*Verifier, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}

	return &Verifier{
		secret:      []byte(cfg.JWTSecret),
		issuer:      cfg.JWTIssuer,
		revocations: revocations,
		parser:      jwt.NewParser(opts...),
	}, nil
}

// Verify parses and validates tokenString. Failures wrap ErrInvalidToken or
// ErrRevokedToken.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	if v.revocations != nil && claims.ID != "" {
		revoked, err := v.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			// Fail closed: an unreadable store must not let revoked tokens through.
			logging.Ctx(ctx).Error().Err(err).Str("jti", claims.ID).Msg("Revocation check failed")
			return nil, fmt.Errorf("%w: revocation check failed: %w", ErrInvalidToken, err)
		}
		if revoked {
			return nil, ErrRevokedToken
		}
	}

	return claims, nil
}

// Revoke blocks the token described by claims until it expires. Tokens
// without a jti cannot be revoked.
func (v *Verifier) Revoke(ctx context.Context, claims *Claims) error {
	if v.revocations == nil {
		return fmt.Errorf("token revocation is not configured")
	}
	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%w: token has no jti", ErrInvalidToken)
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return v.revocations.Revoke(ctx, claims.ID, claims.Subject, expiresAt)
}

// GenerateToken signs a token for userID valid for ttl. It exists for tests
// and local tooling; production tokens come from the identity provider.
func (v *Verifier) GenerateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
