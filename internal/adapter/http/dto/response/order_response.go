package response

import (
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase"
)

type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	Items             []OrderItemResponse `json:"items"`
	Subtotal          float64             `json:"subtotal"`
	Shipping          float64             `json:"shipping"`
	Discount          float64             `json:"discount"`
	Total             float64             `json:"total"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	EstimatedDelivery string              `json:"estimated_delivery"`
	CreatedAt         time.Time           `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Price:       item.Price,
		})
	}
	return OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Items:             items,
		Subtotal:          o.Subtotal,
		Shipping:          o.Shipping,
		Discount:          o.Discount,
		Total:             o.Total,
		Status:            string(o.Status),
		PaymentStatus:     string(o.PaymentStatus),
		EstimatedDelivery: usecase.EstimatedDelivery(o),
		CreatedAt:         o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
