package usecase

import (
	"fmt"
	"strings"

	"retail_agent/internal/domain/entities"
)

// Grounding prompts embed authoritative lookup results so the generation
// model only phrases facts, it never invents them. The model's reply is
// returned to the customer verbatim; product lists and cart numbers shown in
// the UI always come from the lookups themselves.

func summaryFacts(sum entities.CartSummary) string {
	var b strings.Builder
	for _, line := range sum.Items {
		size := line.Size
		if size == "" {
			size = "-"
		}
		fmt.Fprintf(&b, "- %s (size %s) x%d @ %.2f = %.2f\n", line.ProductName, size, line.Quantity, line.Price, line.ItemTotal)
	}
	fmt.Fprintf(&b, "Subtotal: %.2f, Shipping: %.2f, Discount: %.2f, Total: %.2f", sum.Subtotal, sum.Shipping, sum.Discount, sum.Total)
	if sum.DiscountCode != "" {
		fmt.Fprintf(&b, " (code %s applied)", sum.DiscountCode)
	}
	return b.String()
}

func addToCartPrompt(p entities.Product, quantity int, size string, sum entities.CartSummary) string {
	return fmt.Sprintf(
		"The customer just added %d x %s (size %s, unit price %.2f) to their cart.\n"+
			"Cart now contains:\n%s\n"+
			"Confirm the addition in one or two friendly sentences using only these facts.",
		quantity, p.Name, size, p.Price, summaryFacts(sum))
}

func removeFromCartPrompt(p entities.Product, sum entities.CartSummary) string {
	facts := "The cart is now empty."
	if sum.ItemCount > 0 {
		facts = "Cart now contains:\n" + summaryFacts(sum)
	}
	return fmt.Sprintf(
		"The customer just removed %s from their cart.\n%s\n"+
			"Confirm the removal briefly using only these facts.",
		p.Name, facts)
}

func viewCartPrompt(sum entities.CartSummary) string {
	return fmt.Sprintf(
		"The customer asked to see their cart. Authoritative contents:\n%s\n"+
			"Present this cart clearly and ask if they want to check out. Use only these facts.",
		summaryFacts(sum))
}

func discountAppliedPrompt(v entities.DiscountValidation, sum entities.CartSummary) string {
	return fmt.Sprintf(
		"The customer applied discount code %s (%.0f%% off), saving %.2f on a subtotal of %.2f.\n"+
			"Cart now:\n%s\n"+
			"Confirm the discount cheerfully using only these facts.",
		v.Code, v.Percent, v.Amount, v.Subtotal, summaryFacts(sum))
}

func checkoutPrompt(o entities.Order) string {
	return fmt.Sprintf(
		"The customer just placed order %s for %d item(s), total %.2f (subtotal %.2f, shipping %.2f, discount %.2f). "+
			"Estimated delivery: %s.\n"+
			"Confirm the order warmly using only these facts.",
		o.ID, len(o.Items), o.Total, o.Subtotal, o.Shipping, o.Discount, EstimatedDelivery(o))
}

func viewOrdersPrompt(orders []entities.Order) string {
	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "- order %s: %d item(s), total %.2f, status %s, placed %s\n",
			o.ID, len(o.Items), o.Total, o.Status, o.CreatedAt.Format("January 2, 2006"))
	}
	return fmt.Sprintf(
		"The customer asked about their orders. They have %d recent order(s):\n%s"+
			"Summarize this order history using only these facts.",
		len(orders), b.String())
}

func trackOrderPrompt(o entities.Order) string {
	return fmt.Sprintf(
		"The customer asked to track order %s. Status: %s, payment: %s, total %.2f, estimated delivery: %s.\n"+
			"Report the tracking status using only these facts.",
		o.ID, o.Status, o.PaymentStatus, o.Total, EstimatedDelivery(o))
}

func productDetailPrompt(p entities.Product) string {
	sizes := make([]string, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		if s.Quantity > 0 {
			sizes = append(sizes, s.Size)
		}
	}
	available := "none listed"
	if len(sizes) > 0 {
		available = strings.Join(sizes, ", ")
	}
	return fmt.Sprintf(
		"The customer asked about %s (category %s, price %.2f). Description: %s. Sizes in stock: %s.\n"+
			"Describe this product invitingly using only these facts.",
		p.Name, p.Category, p.Price, p.Description, available)
}

func browsePrompt(message string, products []entities.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s) %.2f\n", p.Name, p.Category, p.Price)
	}
	return fmt.Sprintf(
		"The customer said: %q. Matching catalog products:\n%s"+
			"Recommend from this list only and ask if they'd like to add something to their cart.",
		message, b.String())
}
