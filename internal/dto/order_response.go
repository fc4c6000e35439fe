package dto

import "time"

type OrderProductInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrderUserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderResponse struct {
	ID          string           `json:"id"`
	Price       float64          `json:"price"`
	Quantity    int64            `json:"quantity"`
	OrderStatus string           `json:"orderStatus"`
	OrderDate   time.Time        `json:"orderDate"`
	Product     OrderProductInfo `json:"product"`
	Buyer       OrderUserInfo    `json:"buyer"`
	Seller      OrderUserInfo    `json:"seller"`
}
