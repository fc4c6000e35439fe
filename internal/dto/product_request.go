package dto

type ProductRequest struct {
	Name        string  `json:"name" form:"name"`
	Price       float64 `json:"price" form:"price"`
	Description string  `json:"description" form:"description"`
	Category    string  `json:"category" form:"category"`
	Quantity    int64   `json:"quantity" form:"quantity"`
}
