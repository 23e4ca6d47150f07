package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for bearer tokens. Short-lived
// because issued tokens cannot be revoked server-side.
const DefaultTokenTTL = 15 * time.Minute

// Claims are the bearer-token claims issued at login. The token is a
// denormalized snapshot of the account at issuance time; it is not updated
// when the account changes afterwards.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the normalized identity of the subject account.
	Email string `json:"email,omitempty"`

	// Role drives authorization decisions downstream ("admin", "moderator", "user").
	Role string `json:"role,omitempty"`
}

// NewClaims builds minimally-correct claims for an authenticated account.
func NewClaims(subject, email, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
		Role:  role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
