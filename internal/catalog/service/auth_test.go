package service

import (
	"context"
	"testing"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store/drivers/sqlite"
	"github.com/areyesfig/AppAdminProductos/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

const testPassword = "Sup3r-Secret"

func newAuthService(t *testing.T) (*AuthService, *sqlite.Store) {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	svc := &AuthService{
		Store:             s,
		Hasher:            cryptox.Argon2Hasher{},
		Policy:            DefaultPasswordPolicy(),
		MaxFailedAttempts: 3,
		LockoutDuration:   15 * time.Minute,
	}
	return svc, s
}

func registerAccount(t *testing.T, svc *AuthService) domain.AccountView {
	t.Helper()

	view, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	return view
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active user account with normalized email", func(t *testing.T) {
		svc, _ := newAuthService(t)
		view := registerAccount(t, svc)

		require.Equal(t, "alice@example.com", view.Email)
		require.Equal(t, domain.RoleUser, view.Role)
		require.True(t, view.Active)
	})

	t.Run("self-registration never grants privilege", func(t *testing.T) {
		svc, s := newAuthService(t)
		view := registerAccount(t, svc)

		acct, err := s.Accounts().GetAccountByID(ctx, view.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, acct.Role)
	})

	t.Run("rejects duplicate identities case-insensitively", func(t *testing.T) {
		svc, _ := newAuthService(t)
		registerAccount(t, svc)

		_, err := svc.Register(ctx, RegisterRequest{
			Name:     "Other Alice",
			Email:    "  ALICE@example.COM ",
			Password: testPassword,
		})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("rejects weak secrets before touching the store", func(t *testing.T) {
		svc, s := newAuthService(t)
		_, err := svc.Register(ctx, RegisterRequest{
			Name:     "Bob",
			Email:    "bob@example.com",
			Password: "short",
		})
		require.ErrorIs(t, err, ErrWeakPassword)

		empty, err := s.Accounts().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("never stores the plaintext secret", func(t *testing.T) {
		svc, s := newAuthService(t)
		view := registerAccount(t, svc)

		acct, err := s.Accounts().GetAccountByID(ctx, view.ID)
		require.NoError(t, err)
		require.NotEqual(t, testPassword, acct.PasswordHash)
		require.Contains(t, acct.PasswordHash, "$argon2id$")
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials succeed and stamp last login", func(t *testing.T) {
		svc, s := newAuthService(t)
		view := registerAccount(t, svc)

		got, err := svc.Authenticate(ctx, "ALICE@example.com", testPassword, "203.0.113.7")
		require.NoError(t, err)
		require.Equal(t, view.ID, got.ID)

		acct, err := s.Accounts().GetAccountByID(ctx, view.ID)
		require.NoError(t, err)
		require.NotNil(t, acct.LastLoginAt)
	})

	t.Run("unknown identity and wrong secret are indistinguishable", func(t *testing.T) {
		svc, _ := newAuthService(t)
		registerAccount(t, svc)

		_, unknownErr := svc.Authenticate(ctx, "ghost@example.com", testPassword, "")
		_, wrongErr := svc.Authenticate(ctx, "alice@example.com", "Wr0ng-Secret", "")

		require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
		require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
		require.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("locks after the configured number of failures", func(t *testing.T) {
		svc, _ := newAuthService(t)
		registerAccount(t, svc)

		for i := 0; i < 3; i++ {
			_, err := svc.Authenticate(ctx, "alice@example.com", "Wr0ng-Secret", "")
			require.ErrorIs(t, err, ErrInvalidCredentials)
		}

		// Even the correct secret is refused during the lockout window.
		_, err := svc.Authenticate(ctx, "alice@example.com", testPassword, "")
		require.ErrorIs(t, err, ErrAccountLocked)
	})

	t.Run("lockout expires and a success resets the counter", func(t *testing.T) {
		svc, s := newAuthService(t)
		view := registerAccount(t, svc)

		// Force a lockout whose window has already passed.
		past := time.Now().UTC().Add(-time.Minute)
		require.NoError(t, s.Accounts().RecordFailedAttempt(ctx, view.ID, 1, past))

		acct, err := s.Accounts().GetAccountByID(ctx, view.ID)
		require.NoError(t, err)
		require.NotNil(t, acct.LockedUntil)

		got, err := svc.Authenticate(ctx, "alice@example.com", testPassword, "")
		require.NoError(t, err)
		require.Equal(t, view.ID, got.ID)

		acct, err = s.Accounts().GetAccountByID(ctx, view.ID)
		require.NoError(t, err)
		require.Zero(t, acct.FailedAttempts)
		require.Nil(t, acct.LockedUntil)
	})

	t.Run("inactive accounts are refused regardless of secret", func(t *testing.T) {
		svc, s := newAuthService(t)
		view := registerAccount(t, svc)
		require.NoError(t, s.Accounts().SetActive(ctx, view.ID, false))

		_, err := svc.Authenticate(ctx, "alice@example.com", testPassword, "")
		require.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("every attempt lands in the ledger", func(t *testing.T) {
		svc, s := newAuthService(t)
		registerAccount(t, svc)

		_, _ = svc.Authenticate(ctx, "ghost@example.com", testPassword, "198.51.100.4")
		_, _ = svc.Authenticate(ctx, "alice@example.com", "Wr0ng-Secret", "")
		_, err := svc.Authenticate(ctx, "alice@example.com", testPassword, "")
		require.NoError(t, err)

		attempts, err := s.LoginAttempts().ListAttempts(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, attempts, 3)

		var successes int
		for _, a := range attempts {
			if a.Success {
				successes++
			}
		}
		require.Equal(t, 1, successes)
	})

	t.Run("unknown identities are ledgered under the attempted email", func(t *testing.T) {
		svc, s := newAuthService(t)

		_, err := svc.Authenticate(ctx, "  GHOST@Example.com ", testPassword, "198.51.100.4")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		attempts, err := s.LoginAttempts().ListAttempts(ctx, "ghost@example.com", 10)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		require.False(t, attempts[0].Success)
		require.NotNil(t, attempts[0].RemoteAddr)
		require.Equal(t, "198.51.100.4", *attempts[0].RemoteAddr)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the secret after verifying the current one", func(t *testing.T) {
		svc, _ := newAuthService(t)
		view := registerAccount(t, svc)

		require.NoError(t, svc.ChangePassword(ctx, view.ID, testPassword, "N3w-Secret!"))

		_, err := svc.Authenticate(ctx, "alice@example.com", testPassword, "")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "alice@example.com", "N3w-Secret!", "")
		require.NoError(t, err)
	})

	t.Run("rejects a wrong current secret", func(t *testing.T) {
		svc, _ := newAuthService(t)
		view := registerAccount(t, svc)

		err := svc.ChangePassword(ctx, view.ID, "Wr0ng-Secret", "N3w-Secret!")
		require.ErrorIs(t, err, ErrInvalidCurrentPassword)
	})

	t.Run("applies the policy to the new secret", func(t *testing.T) {
		svc, _ := newAuthService(t)
		view := registerAccount(t, svc)

		err := svc.ChangePassword(ctx, view.ID, testPassword, "weak")
		require.ErrorIs(t, err, ErrWeakPassword)
	})
}
