// Package jwtx signs and verifies the service's bearer tokens with an
// Ed25519 keypair. Keys are ephemeral: generated at startup, never
// persisted, so a restart invalidates outstanding tokens.
package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Signer signs claims with an Ed25519 private key.
type Signer struct {
	kid string
	key ed25519.PrivateKey
}

// Verifier validates a token and returns its claims if it is legit.
type Verifier struct {
	kid    string
	pub    ed25519.PublicKey
	issuer string
}

// NewEphemeralKeypair generates a fresh Ed25519 keypair and returns the
// matching signer/verifier pair. The verifier enforces the given issuer.
func NewEphemeralKeypair(issuer string) (*Signer, *Verifier, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	kid := newKID()
	return &Signer{kid: kid, key: priv},
		&Verifier{kid: kid, pub: pub, issuer: issuer},
		nil
}

func newKID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func (s *Signer) KID() string { return s.kid }

// Sign turns the claims into a signed compact JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verify parses and validates a compact JWT string. Expiry and signature
// failures are reported distinctly so callers can decide between
// re-authentication and outright rejection.
func (v *Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, v.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}

func (v *Verifier) keyfunc(t *jwt.Token) (any, error) {
	if kid, ok := t.Header["kid"].(string); ok && kid != v.kid {
		return nil, ErrUnknownKID
	}
	return v.pub, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	case errors.Is(err, ErrUnknownKID):
		return ErrUnknownKID
	default:
		return ErrInvalidSig
	}
}
