package response

import "retail_agent/internal/usecase"

// ChatResponse carries the assistant's text plus the structured lookups the
// reply was grounded on, so clients can render product cards and cart totals
// without parsing prose.
type ChatResponse struct {
	Response    string               `json:"response"`
	Products    []ProductResponse    `json:"products,omitempty"`
	CartSummary *CartSummaryResponse `json:"cart_summary,omitempty"`
}

func FromChatResult(r usecase.ChatResult) ChatResponse {
	resp := ChatResponse{Response: r.ResponseText}
	if len(r.Products) > 0 {
		resp.Products = FromProducts(r.Products)
	}
	if r.CartSummary != nil {
		summary := FromCartSummary(*r.CartSummary)
		resp.CartSummary = &summary
	}
	return resp
}
