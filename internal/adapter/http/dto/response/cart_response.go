package response

import "retail_agent/internal/domain/entities"

type SummaryLineResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	ItemTotal   float64 `json:"item_total"`
}

type CartSummaryResponse struct {
	Items        []SummaryLineResponse `json:"items"`
	Subtotal     float64               `json:"subtotal"`
	Shipping     float64               `json:"shipping"`
	Discount     float64               `json:"discount"`
	Total        float64               `json:"total"`
	DiscountCode string                `json:"discount_code,omitempty"`
	ItemCount    int                   `json:"item_count"`
}

func FromCartSummary(s entities.CartSummary) CartSummaryResponse {
	items := make([]SummaryLineResponse, 0, len(s.Items))
	for _, line := range s.Items {
		items = append(items, SummaryLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Size:        line.Size,
			Price:       line.Price,
			ImageURL:    line.ImageURL,
			ItemTotal:   line.ItemTotal,
		})
	}
	return CartSummaryResponse{
		Items:        items,
		Subtotal:     s.Subtotal,
		Shipping:     s.Shipping,
		Discount:     s.Discount,
		Total:        s.Total,
		DiscountCode: s.DiscountCode,
		ItemCount:    s.ItemCount,
	}
}

type DiscountValidationResponse struct {
	Code     string  `json:"code"`
	Percent  float64 `json:"percent"`
	Amount   float64 `json:"amount"`
	Subtotal float64 `json:"subtotal"`
}

func FromDiscountValidation(v entities.DiscountValidation) DiscountValidationResponse {
	return DiscountValidationResponse{
		Code:     v.Code,
		Percent:  v.Percent,
		Amount:   v.Amount,
		Subtotal: v.Subtotal,
	}
}
