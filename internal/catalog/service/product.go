package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store"
	"github.com/areyesfig/AppAdminProductos/pkg/idx"
)

// ErrInvalidProduct reports a product payload failing validation.
var ErrInvalidProduct = errors.New("invalid_product")

// ProductService is the catalog CRUD surface. Any authenticated principal
// may manage products; only user administration is role-gated.
type ProductService struct {
	Store store.Store
}

// ProductInput carries the mutable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Quantity    int64
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidProduct)
	}
	return nil
}

// Create inserts a new product attributed to the creating principal.
func (s *ProductService) Create(ctx context.Context, createdBy string, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	now := time.Now().UTC()
	p := domain.Product{
		ID:          idx.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Quantity:    in.Quantity,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Get fetches one product.
func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.Store.Products().GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}

// Update replaces the mutable fields of a product.
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.PriceCents = in.PriceCents
	p.Quantity = in.Quantity
	p.UpdatedAt = time.Now().UTC()

	if err := s.Store.Products().UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.Store.Products().DeleteProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
