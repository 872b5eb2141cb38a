package entities

// SizeStock is a per-size inventory variant of a product.
type SizeStock struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Product is the catalog record the assistant treats as authoritative
// reference data. The engine only reads products; catalog maintenance is
// owned by the admin surface.
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"image_url,omitempty"`
	Stock       int         `json:"stock"`
	Sizes       []SizeStock `json:"sizes,omitempty"`
}
