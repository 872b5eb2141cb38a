package response

import "retail_agent/internal/domain/entities"

type SizeStockResponse struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type ProductResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       float64             `json:"price"`
	Category    string              `json:"category"`
	ImageURL    string              `json:"image_url,omitempty"`
	Stock       int                 `json:"stock"`
	Sizes       []SizeStockResponse `json:"sizes,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	sizes := make([]SizeStockResponse, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, SizeStockResponse{Size: s.Size, Quantity: s.Quantity})
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Sizes:       sizes,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
