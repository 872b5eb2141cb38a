package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// intent is the closed set of request categories the router dispatches on.
type intent int

const (
	intentClearHistory intent = iota
	intentAddToCart
	intentRemoveFromCart
	intentApplyDiscount
	intentCheckout
	intentViewCart
	intentTrackOrder
	intentViewOrders
	intentProductDetail
	intentBrowseProducts
	intentFallback
)

type intentRule struct {
	intent  intent
	phrases []string
}

// intentRules is evaluated top to bottom, first match wins. The order is a
// contract: later rules are only reachable when earlier ones did not match,
// so mutation phrases sit above the view phrases they overlap with
// ("remove ... from my cart" must never route to view-cart) and explicit
// add-to-cart phrasing outranks the generic buy/purchase catch-all.
// Reordering changes externally observable behavior; the order is covered by
// tests.
var intentRules = []intentRule{
	{intentClearHistory, []string{
		"clear history", "clear the history", "clear chat", "clear the chat",
		"clear my history", "start over", "reset the conversation", "reset conversation",
		"forget this conversation",
	}},
	{intentAddToCart, []string{
		"add to cart", "add to my cart", "add this to", "add it to", "add that to",
		"put in my cart", "put it in", "put this in", "put in cart",
		// "add " (with the trailing space) catches "add 2 tees to my cart"
		// before the view-cart rule can see "my cart".
		"add ",
	}},
	{intentAddToCart, []string{
		"buy", "purchase", "i'll take",
	}},
	{intentRemoveFromCart, []string{
		"remove", "take out", "take it out", "take this out", "delete from cart",
		"take off",
	}},
	{intentApplyDiscount, []string{
		"discount", "coupon", "promo", "voucher", "apply code",
	}},
	{intentCheckout, []string{
		"checkout", "check out", "place order", "place my order", "place the order",
		"complete my order", "proceed to payment",
	}},
	{intentViewCart, []string{
		"my cart", "view cart", "show cart", "the cart", "cart summary",
		"what's in my cart", "whats in my cart",
	}},
	{intentTrackOrder, []string{
		"track", "where is my order", "where's my order", "order status",
		"delivery status",
	}},
	{intentViewOrders, []string{
		"my orders", "order history", "past orders", "recent orders",
		"previous orders", "past purchases",
	}},
	{intentProductDetail, []string{
		"tell me about", "more about", "details of", "details about", "describe",
	}},
	{intentBrowseProducts, []string{
		"show me", "show", "recommend", "browse", "looking for", "suggest",
		"what do you have", "search",
	}},
}

// classifyIntent folds the message and walks the rule list in order.
func classifyIntent(message string) intent {
	m := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(m, phrase) {
				return rule.intent
			}
		}
	}
	return intentFallback
}

const defaultSize = "M"

var (
	productIDPattern = regexp.MustCompile(`(?i)(?:\bproduct\s+|\bid\s+|#)(\d+)`)
	quantityPattern  = regexp.MustCompile(`\b(\d+)\b(?:\s*(?:pieces?|items?))?`)
	sizePattern      = regexp.MustCompile(`(?i)\bsize\s+([a-z]+)\b`)
)

// extractProductID pulls an explicit numeric identifier ("product 12",
// "id 12", "#12") out of the message.
func extractProductID(message string) string {
	m := productIDPattern.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractQuantity returns the first integer token in the message, defaulting
// to 1. Digits that belong to an explicit product-id reference are not
// quantities and are stripped before matching.
func extractQuantity(message string) int {
	cleaned := productIDPattern.ReplaceAllString(message, " ")
	m := quantityPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return 1
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}

// extractSize returns the case-normalized "size <letters>" value, defaulting
// to the baseline size.
func extractSize(message string) string {
	if s := extractSizeOrEmpty(message); s != "" {
		return s
	}
	return defaultSize
}

// extractSizeOrEmpty is extractSize without the baseline default, for
// operations where an unspecified size means "any".
func extractSizeOrEmpty(message string) string {
	m := sizePattern.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

// discountCodePattern matches an explicit "code SAVE10" style mention; as a
// fallback any token mixing letters and digits is treated as a code.
var (
	explicitCodePattern = regexp.MustCompile(`(?i)\b(?:code|coupon|voucher)\s+([a-z0-9]+)\b`)
	codeTokenPattern    = regexp.MustCompile(`\b([A-Za-z]+\d+[A-Za-z0-9]*)\b`)
)

func extractDiscountCode(message string) string {
	if m := explicitCodePattern.FindStringSubmatch(message); m != nil {
		return strings.ToUpper(m[1])
	}
	if m := codeTokenPattern.FindStringSubmatch(message); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

// orderIDPattern matches UUID-shaped tokens used as order identifiers.
var orderIDPattern = regexp.MustCompile(`\b([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})\b`)

func extractOrderID(message string) string {
	m := orderIDPattern.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
