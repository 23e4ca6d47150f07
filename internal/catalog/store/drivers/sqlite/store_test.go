package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store"
	"github.com/areyesfig/AppAdminProductos/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestAccount(t *testing.T) domain.Account {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	return domain.Account{
		ID:           idx.New().String(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAccountsRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and fetch by normalized email", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		got, err := s.Accounts().GetAccountByEmail(ctx, "  ALICE@Example.COM ")
		require.NoError(t, err)
		require.Equal(t, acct.ID, got.ID)
		require.Equal(t, "alice@example.com", got.Email)
		require.True(t, got.Active)
		require.Zero(t, got.FailedAttempts)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		dup := newTestAccount(t)
		dup.Email = "Alice@Example.com"
		err := s.Accounts().CreateAccount(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.Accounts().GetAccountByEmail(ctx, "ghost@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		err = s.Accounts().UpdatePasswordHash(ctx, idx.New().String(), "x")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("failed attempts lock at the threshold", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		deadline := time.Now().UTC().Add(15 * time.Minute).Truncate(time.Second)
		for i := 0; i < 4; i++ {
			require.NoError(t, s.Accounts().RecordFailedAttempt(ctx, acct.ID, 5, deadline))
		}

		got, err := s.Accounts().GetAccountByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, 4, got.FailedAttempts)
		require.Nil(t, got.LockedUntil)

		require.NoError(t, s.Accounts().RecordFailedAttempt(ctx, acct.ID, 5, deadline))

		got, err = s.Accounts().GetAccountByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, 5, got.FailedAttempts)
		require.NotNil(t, got.LockedUntil)
		require.WithinDuration(t, deadline, *got.LockedUntil, time.Second)
	})

	t.Run("success resets the counter and clears the lockout", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		deadline := time.Now().UTC().Add(15 * time.Minute)
		for i := 0; i < 5; i++ {
			require.NoError(t, s.Accounts().RecordFailedAttempt(ctx, acct.ID, 5, deadline))
		}

		at := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, s.Accounts().RecordSuccess(ctx, acct.ID, at))

		got, err := s.Accounts().GetAccountByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Zero(t, got.FailedAttempts)
		require.Nil(t, got.LockedUntil)
		require.NotNil(t, got.LastLoginAt)
		require.WithinDuration(t, at, *got.LastLoginAt, time.Second)
	})

	t.Run("set active and list", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		empty, err := s.Accounts().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)

		require.NoError(t, s.Accounts().SetActive(ctx, acct.ID, false))

		accts, err := s.Accounts().ListAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, accts, 1)
		require.False(t, accts[0].Active)
	})
}

func TestSessionsRepo(t *testing.T) {
	ctx := context.Background()

	seedSession := func(t *testing.T, s *Store, acct domain.Account, ttl time.Duration) domain.Session {
		t.Helper()
		now := time.Now().UTC().Truncate(time.Second)
		sess := domain.Session{
			IDHash:    idx.New().String(),
			AccountID: acct.ID,
			Email:     acct.Email,
			Role:      acct.Role,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
		require.NoError(t, s.Sessions().CreateSession(ctx, sess))
		return sess
	}

	t.Run("create, fetch, delete", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		sess := seedSession(t, s, acct, time.Hour)

		got, err := s.Sessions().GetSessionByHash(ctx, sess.IDHash)
		require.NoError(t, err)
		require.Equal(t, acct.ID, got.AccountID)
		require.Equal(t, domain.RoleUser, got.Role)

		require.NoError(t, s.Sessions().DeleteSession(ctx, sess.IDHash))
		_, err = s.Sessions().GetSessionByHash(ctx, sess.IDHash)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete all account sessions", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		a := seedSession(t, s, acct, time.Hour)
		b := seedSession(t, s, acct, time.Hour)

		require.NoError(t, s.Sessions().DeleteAccountSessions(ctx, acct.ID))

		_, err := s.Sessions().GetSessionByHash(ctx, a.IDHash)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Sessions().GetSessionByHash(ctx, b.IDHash)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expired sessions are swept", func(t *testing.T) {
		s := newTestStore(t)
		acct := newTestAccount(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

		stale := seedSession(t, s, acct, -time.Minute)
		fresh := seedSession(t, s, acct, time.Hour)

		require.NoError(t, s.Sessions().DeleteExpiredSessions(ctx))

		_, err := s.Sessions().GetSessionByHash(ctx, stale.IDHash)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Sessions().GetSessionByHash(ctx, fresh.IDHash)
		require.NoError(t, err)
	})
}

func TestAttemptsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	remote := "203.0.113.7"
	err := s.LoginAttempts().AppendAttempt(ctx, domain.LoginAttempt{
		ID:         idx.New().String(),
		Email:      "ghost@example.com",
		Success:    false,
		RemoteAddr: &remote,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	// Unknown identities are ledgered too; there is no FK to accounts.
	err = s.LoginAttempts().AppendAttempt(ctx, domain.LoginAttempt{
		ID:        idx.New().String(),
		Email:     "nobody@example.com",
		Success:   false,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestProductsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	acct := newTestAccount(t)
	require.NoError(t, s.Accounts().CreateAccount(ctx, acct))

	now := time.Now().UTC().Truncate(time.Second)
	p := domain.Product{
		ID:          idx.New().String(),
		Name:        "Mechanical Keyboard",
		Description: "Tenkeyless, brown switches",
		PriceCents:  129900,
		Quantity:    12,
		CreatedBy:   acct.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Products().CreateProduct(ctx, p))

	got, err := s.Products().GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Name, got.Name)
	require.EqualValues(t, 129900, got.PriceCents)

	p.Quantity = 10
	p.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, s.Products().UpdateProduct(ctx, p))

	list, err := s.Products().ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.EqualValues(t, 10, list[0].Quantity)

	require.NoError(t, s.Products().DeleteProduct(ctx, p.ID))
	_, err = s.Products().GetProductByID(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Products().DeleteProduct(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	acct := newTestAccount(t)
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, acct); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Accounts().GetAccountByID(ctx, acct.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
