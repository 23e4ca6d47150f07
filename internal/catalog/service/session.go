package service

import (
	"context"
	"errors"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store"
	"github.com/areyesfig/AppAdminProductos/pkg/cryptox"
)

// DefaultSessionTTL is the fixed lifetime of a server-side session.
const DefaultSessionTTL = 12 * time.Hour

// SessionService issues and resolves opaque server-side sessions for the
// browser flow. The raw session id is random, returned exactly once, and
// only its SHA-256 fingerprint is persisted.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// Issue mints a fresh session for the account and stores its fingerprint.
// Callers rotate sessions at login by revoking any prior cookie first.
func (s *SessionService) Issue(ctx context.Context, acct domain.AccountView) (domain.SessionHandle, error) {
	raw, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.SessionHandle{}, err
	}

	now := time.Now().UTC()
	sess := domain.Session{
		IDHash:    cryptox.FingerprintToken(raw),
		AccountID: acct.ID,
		Email:     acct.Email,
		Role:      acct.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.SessionHandle{}, err
	}

	return domain.SessionHandle{ID: raw, ExpiresAt: sess.ExpiresAt}, nil
}

// Resolve maps a raw session id back to a principal. Expired sessions are
// deleted on sight and reported as invalid.
func (s *SessionService) Resolve(ctx context.Context, rawID string) (domain.Principal, error) {
	if rawID == "" {
		return domain.Principal{}, ErrSessionInvalid
	}

	idHash := cryptox.FingerprintToken(rawID)
	sess, err := s.Store.Sessions().GetSessionByHash(ctx, idHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrSessionInvalid
		}
		return domain.Principal{}, err
	}

	if sess.Expired(time.Now().UTC()) {
		_ = s.Store.Sessions().DeleteSession(ctx, idHash)
		return domain.Principal{}, ErrSessionInvalid
	}

	return domain.Principal{
		AccountID: sess.AccountID,
		Email:     sess.Email,
		Role:      sess.Role,
		Source:    domain.PrincipalFromSession,
	}, nil
}

// Revoke deletes one session by its raw id. Revoking an unknown session is
// not an error; logout must be idempotent.
func (s *SessionService) Revoke(ctx context.Context, rawID string) error {
	if rawID == "" {
		return nil
	}
	err := s.Store.Sessions().DeleteSession(ctx, cryptox.FingerprintToken(rawID))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// RevokeAccount deletes every session belonging to an account. Used when an
// admin deactivates the account so browser access dies with it.
func (s *SessionService) RevokeAccount(ctx context.Context, accountID string) error {
	return s.Store.Sessions().DeleteAccountSessions(ctx, accountID)
}
