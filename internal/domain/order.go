package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusRejected  OrderStatus = "Rejected"
)

// Terminal reports whether the order can no longer change state. Every
// status except Pending is terminal; there is no path back to Pending.
func (s OrderStatus) Terminal() bool {
	return s != OrderStatusPending
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusPending {
		return false
	}
	return next == OrderStatusAccepted || next == OrderStatusCancelled || next == OrderStatusRejected
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	OrderStatus OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	OrderDate   time.Time          `bson:"orderDate" json:"orderDate"`
	Buyer       primitive.ObjectID `bson:"buyer" json:"buyer"`
	Seller      primitive.ObjectID `bson:"seller" json:"seller"`
	Product     primitive.ObjectID `bson:"product" json:"product"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
