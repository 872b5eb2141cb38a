package request

import "strings"

// CartItemRequest adds or updates one cart line. Quantity has no binding
// constraint: zero and negative values are meaningful to the update endpoint
// (they remove the line) and are validated by the use case.
type CartItemRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

func (r CartItemRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r CartItemRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

func (r CartItemRequest) ResolveSize() string {
	return strings.TrimSpace(r.Size)
}

// DiscountRequest applies a discount code to the cart.
type DiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r DiscountRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}
