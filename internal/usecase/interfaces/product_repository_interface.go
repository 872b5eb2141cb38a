package interfaces

import (
	"context"

	"retail_agent/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// The assistant only reads the catalog; a zero-value Product (empty ID) means
// not found, mirroring the GetItem miss behavior.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListByCategory(ctx context.Context, category string) ([]entities.Product, error)
	ListAll(ctx context.Context, limit int) ([]entities.Product, error)
}
