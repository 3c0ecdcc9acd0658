package api

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of the backend's JWT payload the client cares
// about. Verification authority stays with the backend; the client only
// peeks at claims for status display.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// PeekClaims decodes the token payload without verifying the signature.
// The result is informational (expiry hint, role hint) and must never be
// used to make an authorization decision the backend would not re-check.
func PeekClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	return claims, nil
}
