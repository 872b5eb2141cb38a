package interfaces

import (
	"context"

	"retail_agent/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for the per-user cart
// document.
//
// The cart is read and written as a whole document; mutations are
// read-modify-write cycles serialized per user by the use case.

type ICartRepository interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) (entities.Cart, error)
	Delete(ctx context.Context, userID string) error
}
