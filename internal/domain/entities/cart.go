package entities

import "time"

// CartItem is one (product, size) line with a quantity.
//
// Invariant: a cart holds at most one line per (product, size) pair; adding
// the same pair again increments the quantity instead of appending.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// Cart is the per-user cart document. Carts are created lazily on first
// access and only emptied by an explicit clear.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - whole-document read/write; the line slice and the applied discount code
//     travel together so a single PutItem replaces the full cart state.
type Cart struct {
	UserID       string     `json:"user_id"`
	Items        []CartItem `json:"items"`
	DiscountCode string     `json:"discount_code,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SummaryLine is a cart line joined with the current catalog record.
type SummaryLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	ItemTotal   float64 `json:"item_total"`
}

// CartSummary is derived on every read and never persisted. Item totals are
// computed from the catalog price at read time, so a later price change is
// reflected in an existing cart.
type CartSummary struct {
	Items        []SummaryLine `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	Shipping     float64       `json:"shipping"`
	Discount     float64       `json:"discount"`
	Total        float64       `json:"total"`
	DiscountCode string        `json:"discount_code,omitempty"`
	ItemCount    int           `json:"item_count"`
}
