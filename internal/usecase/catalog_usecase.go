package usecase

import (
	"context"
	"errors"
	"strings"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// ICatalogUseCase exposes read-only catalog lookups. The assistant must query
// the catalog for every transactional fact; it never trusts product details
// remembered from conversation history.

type ICatalogUseCase interface {
	FindByID(ctx context.Context, id string) (entities.Product, error)
	FindByCategory(ctx context.Context, category string) ([]entities.Product, error)
	FindAll(ctx context.Context, limit int) ([]entities.Product, error)
}

type CatalogUseCase struct {
	products interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

func (u *CatalogUseCase) FindByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) FindByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, nil
	}
	return u.products.ListByCategory(ctx, category)
}

func (u *CatalogUseCase) FindAll(ctx context.Context, limit int) ([]entities.Product, error) {
	return u.products.ListAll(ctx, limit)
}
