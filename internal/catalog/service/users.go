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

// UserAdminService is the admin-only account management surface. All methods
// assume the caller has already been authorized as an admin.
type UserAdminService struct {
	Store    store.Store
	Hasher   PasswordHasher
	Policy   PasswordPolicy
	Sessions *SessionService
}

// List returns every account as its public projection.
func (s *UserAdminService) List(ctx context.Context) ([]domain.AccountView, error) {
	accts, err := s.Store.Accounts().ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.AccountView, 0, len(accts))
	for _, a := range accts {
		views = append(views, a.View())
	}
	return views, nil
}

// CreateRequest carries the inputs for admin account creation. Unlike
// self-registration, the role is chosen by the admin.
type CreateRequest struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// Create provisions a new active account with an explicit role.
func (s *UserAdminService) Create(ctx context.Context, req CreateRequest) (domain.AccountView, error) {
	role, err := domain.ParseRole(string(req.Role))
	if err != nil {
		return domain.AccountView{}, err
	}

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
		Role:         role,
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

// UpdateProfile changes an account's name and identity.
func (s *UserAdminService) UpdateProfile(ctx context.Context, id, name, email string) error {
	err := s.Store.Accounts().UpdateProfile(ctx, id, name, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrDuplicateEmail
	}
	return err
}

// SetActive flips the active flag. Admins cannot deactivate themselves, and
// deactivating an account destroys its server-side sessions so browser
// access ends immediately. Outstanding bearer tokens keep working until
// they expire.
func (s *UserAdminService) SetActive(ctx context.Context, actorID, targetID string, active bool) error {
	if !active && actorID == targetID {
		return ErrSelfDeactivation
	}

	if err := s.Store.Accounts().SetActive(ctx, targetID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !active {
		if err := s.Sessions.RevokeAccount(ctx, targetID); err != nil {
			slogx.FromContext(ctx).Error("failed to revoke sessions for deactivated account",
				slog.String("account_id", targetID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
