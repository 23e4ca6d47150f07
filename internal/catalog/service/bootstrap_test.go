package service

import (
	"context"
	"testing"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestBootstrapEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds an admin on an empty database", func(t *testing.T) {
		auth, s := newAuthService(t)
		boot := &BootstrapService{
			Store:         s,
			Hasher:        cryptox.Argon2Hasher{},
			AdminName:     "Root",
			AdminEmail:    "root@example.com",
			AdminPassword: testPassword,
		}
		require.NoError(t, boot.EnsureAdmin(ctx))

		view, err := auth.Authenticate(ctx, "root@example.com", testPassword, "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, view.Role)
	})

	t.Run("is a no-op when accounts exist", func(t *testing.T) {
		auth, s := newAuthService(t)
		registerAccount(t, auth)

		boot := &BootstrapService{
			Store:         s,
			Hasher:        cryptox.Argon2Hasher{},
			AdminEmail:    "root@example.com",
			AdminPassword: testPassword,
		}
		require.NoError(t, boot.EnsureAdmin(ctx))

		_, err := auth.Authenticate(ctx, "root@example.com", testPassword, "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty database without configuration stays empty", func(t *testing.T) {
		_, s := newAuthService(t)
		boot := &BootstrapService{Store: s, Hasher: cryptox.Argon2Hasher{}}
		require.NoError(t, boot.EnsureAdmin(ctx))

		empty, err := s.Accounts().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})
}
