package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store"
	"github.com/areyesfig/AppAdminProductos/pkg/idx"
	"github.com/areyesfig/AppAdminProductos/pkg/slogx"
)

// Lockout defaults. Both are tunable through AuthService fields.
const (
	DefaultMaxFailedAttempts = 5
	DefaultLockoutDuration   = 15 * time.Minute
)

// PasswordHasher abstracts the one-way secret hash so the scheme and its
// cost parameters can change without touching the authentication flow.
type PasswordHasher interface {
	// Hash derives a self-describing encoded hash from a plaintext secret.
	Hash(password string) (string, error)
	// Verify checks a plaintext secret against an encoded hash. It returns
	// cryptox.ErrPasswordMismatch when the secret does not match.
	Verify(password, encoded string) error
}

// AuthService implements registration, login, and password changes. Every
// login attempt, including those against unknown or locked accounts, lands
// in the append-only attempt ledger.
type AuthService struct {
	Store  store.Store
	Hasher PasswordHasher
	Policy PasswordPolicy

	MaxFailedAttempts int
	LockoutDuration   time.Duration
}

func (s *AuthService) maxFailed() int {
	if s.MaxFailedAttempts <= 0 {
		return DefaultMaxFailedAttempts
	}
	return s.MaxFailedAttempts
}

func (s *AuthService) lockoutFor() time.Duration {
	if s.LockoutDuration <= 0 {
		return DefaultLockoutDuration
	}
	return s.LockoutDuration
}

// RegisterRequest carries the inputs for self-service registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new active account. Self-registration always produces
// the user role; privilege is only ever granted by an admin afterwards.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (domain.AccountView, error) {
	if err := s.Policy.Validate(req.Password); err != nil {
		return domain.AccountView{}, err
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return domain.AccountView{}, err
	}

	now := time.Now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        domain.NormalizeEmail(req.Email),
		Name:         req.Name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, acct); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.AccountView{}, ErrDuplicateEmail
		}
		return domain.AccountView{}, err
	}

	return acct.View(), nil
}

// Authenticate validates an identity/secret pair. Checks run in a fixed
// order: lookup, lockout, active flag, then secret verification, so a locked
// account reports the lockout even when the submitted secret is wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string, remoteAddr string) (domain.AccountView, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()
	normalized := domain.NormalizeEmail(email)

	acct, err := s.Store.Accounts().GetAccountByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.recordAttempt(ctx, normalized, false, remoteAddr)
			return domain.AccountView{}, ErrInvalidCredentials
		}
		return domain.AccountView{}, err
	}

	if acct.Locked(now) {
		s.recordAttempt(ctx, normalized, false, remoteAddr)
		return domain.AccountView{}, ErrAccountLocked
	}

	if !acct.Active {
		s.recordAttempt(ctx, normalized, false, remoteAddr)
		return domain.AccountView{}, ErrAccountInactive
	}

	if err := s.Hasher.Verify(password, acct.PasswordHash); err != nil {
		deadline := now.Add(s.lockoutFor())
		if ferr := s.Store.Accounts().RecordFailedAttempt(ctx, acct.ID, s.maxFailed(), deadline); ferr != nil {
			l.Error("failed to record failed login", slog.Any("error", ferr))
		}
		s.recordAttempt(ctx, normalized, false, remoteAddr)
		return domain.AccountView{}, ErrInvalidCredentials
	}

	// Resetting the counter is part of a successful login; if it cannot be
	// persisted the login fails closed.
	if err := s.Store.Accounts().RecordSuccess(ctx, acct.ID, now); err != nil {
		return domain.AccountView{}, err
	}

	s.recordAttempt(ctx, normalized, true, remoteAddr)
	return acct.View(), nil
}

// ChangePassword replaces the account secret after re-verifying the current
// one. New secrets go through the same policy as registration.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, current, next string) error {
	acct, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Hasher.Verify(current, acct.PasswordHash); err != nil {
		return ErrInvalidCurrentPassword
	}

	if err := s.Policy.Validate(next); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(next)
	if err != nil {
		return err
	}

	return s.Store.Accounts().UpdatePasswordHash(ctx, accountID, hash)
}

// GetAccount returns the public projection of one account.
func (s *AuthService) GetAccount(ctx context.Context, accountID string) (domain.AccountView, error) {
	acct, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccountView{}, ErrNotFound
		}
		return domain.AccountView{}, err
	}
	return acct.View(), nil
}

// recordAttempt appends one ledger row. Ledger writes never fail a login;
// errors are logged and swallowed.
func (s *AuthService) recordAttempt(ctx context.Context, email string, success bool, remoteAddr string) {
	attempt := domain.LoginAttempt{
		ID:        idx.New().String(),
		Email:     email,
		Success:   success,
		CreatedAt: time.Now().UTC(),
	}
	if remoteAddr != "" {
		attempt.RemoteAddr = &remoteAddr
	}

	if err := s.Store.LoginAttempts().AppendAttempt(ctx, attempt); err != nil {
		slogx.FromContext(ctx).Error("failed to append login attempt",
			slog.Any("error", err),
			slog.Bool("success", success),
		)
	}
}
