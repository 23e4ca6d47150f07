package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductService(t *testing.T) {
	ctx := context.Background()

	newSvc := func(t *testing.T) (*ProductService, string) {
		t.Helper()
		auth, s := newAuthService(t)
		view := registerAccount(t, auth)
		return &ProductService{Store: s}, view.ID
	}

	t.Run("create, get, list", func(t *testing.T) {
		svc, creator := newSvc(t)

		p, err := svc.Create(ctx, creator, ProductInput{
			Name:        "  Standing Desk  ",
			Description: "120x80, oak",
			PriceCents:  349900,
			Quantity:    3,
		})
		require.NoError(t, err)
		require.Equal(t, "Standing Desk", p.Name)
		require.Equal(t, creator, p.CreatedBy)

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, p.ID, got.ID)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("validation", func(t *testing.T) {
		svc, creator := newSvc(t)

		_, err := svc.Create(ctx, creator, ProductInput{Name: "   "})
		require.ErrorIs(t, err, ErrInvalidProduct)

		_, err = svc.Create(ctx, creator, ProductInput{Name: "X", PriceCents: -1})
		require.ErrorIs(t, err, ErrInvalidProduct)

		_, err = svc.Create(ctx, creator, ProductInput{Name: "X", Quantity: -1})
		require.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("update and delete", func(t *testing.T) {
		svc, creator := newSvc(t)

		p, err := svc.Create(ctx, creator, ProductInput{Name: "Chair", PriceCents: 9900, Quantity: 10})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, p.ID, ProductInput{Name: "Chair", PriceCents: 8900, Quantity: 8})
		require.NoError(t, err)
		require.EqualValues(t, 8900, updated.PriceCents)
		require.EqualValues(t, 8, updated.Quantity)

		require.NoError(t, svc.Delete(ctx, p.ID))
		_, err = svc.Get(ctx, p.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, svc.Delete(ctx, p.ID), ErrNotFound)
	})

	t.Run("missing products are not found", func(t *testing.T) {
		svc, _ := newSvc(t)

		_, err := svc.Get(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Update(ctx, "missing", ProductInput{Name: "X"})
		require.ErrorIs(t, err, ErrNotFound)
	})
}
