package sqlite

import (
	"context"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/jmoiron/sqlx"
)

type productsRepo struct {
	db sqlx.ExtContext
}

const productColumns = `id, name, description, price_cents, quantity, created_by, created_at, updated_at`

func (r *productsRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := sqlx.GetContext(ctx, r.db, &p,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.SelectContext(ctx, r.db, &out,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price_cents, quantity, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.PriceCents, p.Quantity, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	return mapConflict(err)
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`UPDATE products
		 SET name = ?, description = ?, price_cents = ?, quantity = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Description, p.PriceCents, p.Quantity, p.UpdatedAt, p.ID))
}

func (r *productsRepo) DeleteProduct(ctx context.Context, id string) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = ?`, id))
}
