package dto

type PlaceOrderRequest struct {
	Buyer    string  `json:"buyer"`
	Seller   string  `json:"seller"`
	Product  string  `json:"product"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

type CancelOrderRequest struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
}

type OrderActionRequest struct {
	OrderID string `json:"orderId"`
}
