package entities

import (
	"strings"
	"time"
)

// DiscountCode is a percentage-off code with a minimum qualifying subtotal.
// The engine never mutates codes; validity is re-evaluated on every use.
//
// Storage model (DynamoDB):
//   - PK: code (canonical upper-case)
type DiscountCode struct {
	Code        string     `json:"code"`
	Percent     float64    `json:"percent"`
	MinPurchase float64    `json:"min_purchase"`
	Active      bool       `json:"active"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
}

// CanonicalCode normalizes a user-supplied code for lookup.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Expired reports whether the code's validity window has passed at now.
// Codes without an expiry never expire.
func (d DiscountCode) Expired(now time.Time) bool {
	return d.ValidUntil != nil && now.After(*d.ValidUntil)
}

// DiscountValidation is the outcome of applying a code to a subtotal.
type DiscountValidation struct {
	Code     string  `json:"code"`
	Percent  float64 `json:"percent"`
	Amount   float64 `json:"amount"`
	Subtotal float64 `json:"subtotal"`
}
