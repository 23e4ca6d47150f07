package service

import (
	"context"
	"errors"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/pkg/jwtx"
)

// TokenService issues and verifies signed bearer tokens for the API flow.
// Tokens are self-contained: claims are trusted as issued until expiry, so
// role or active-flag changes only take effect once the token lapses.
type TokenService struct {
	Signer   *jwtx.Signer
	Verifier *jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultTokenTTL
	}
	return s.TTL
}

// Issue signs a short-lived bearer token carrying the account's identity
// snapshot. It returns the compact token and its expiry.
func (s *TokenService) Issue(_ context.Context, acct domain.AccountView) (string, time.Time, error) {
	claims := jwtx.NewClaims(acct.ID, acct.Email, string(acct.Role), s.Issuer, s.ttl(), time.Now().UTC())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt.Time, nil
}

// Verify parses and validates a bearer token and maps it to a principal.
// Expiry is reported distinctly so clients know to re-authenticate rather
// than treat the token as forged.
func (s *TokenService) Verify(_ context.Context, token string) (domain.Principal, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return domain.Principal{}, ErrTokenExpired
		}
		return domain.Principal{}, ErrTokenInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, ErrTokenInvalid
	}

	return domain.Principal{
		AccountID: claims.Subject,
		Email:     claims.Email,
		Role:      role,
		Source:    domain.PrincipalFromToken,
	}, nil
}
