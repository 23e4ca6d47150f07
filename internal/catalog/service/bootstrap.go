package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store"
	"github.com/areyesfig/AppAdminProductos/pkg/idx"
	"github.com/areyesfig/AppAdminProductos/pkg/slogx"
)

// BootstrapService seeds the first admin account on an empty database so a
// fresh deployment can be logged into at all.
type BootstrapService struct {
	Store  store.Store
	Hasher PasswordHasher

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// EnsureAdmin creates the configured admin account when no accounts exist.
// On a populated database it is a no-op.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	if s.AdminEmail == "" || s.AdminPassword == "" {
		l.Warn("database is empty but no bootstrap admin is configured")
		return nil
	}

	hash, err := s.Hasher.Hash(s.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        domain.NormalizeEmail(s.AdminEmail),
		Name:         s.AdminName,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, acct); err != nil {
		return err
	}

	l.Info("bootstrapped initial admin account",
		slog.String("account_id", acct.ID),
		slog.String("email", acct.Email),
	)
	return nil
}
