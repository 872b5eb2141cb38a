package interfaces

import (
	"context"

	"retail_agent/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Order, error)
}
