package interfaces

import (
	"context"

	"retail_agent/internal/domain/entities"
)

// IDiscountRepository abstracts DynamoDB persistence for DiscountCode.
//
// Lookup is by canonical (upper-case) code. A zero-value DiscountCode means
// the code is unknown.

type IDiscountRepository interface {
	GetByCode(ctx context.Context, code string) (entities.DiscountCode, error)
}
