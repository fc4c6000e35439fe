package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "Available"
	ProductStatusOrdered   ProductStatus = "Ordered"
	ProductStatusSold      ProductStatus = "Sold"
)

// CanTransitionTo reports whether the status change is a legal lifecycle
// step. Sold is terminal.
func (s ProductStatus) CanTransitionTo(next ProductStatus) bool {
	switch s {
	case ProductStatusAvailable:
		return next == ProductStatusOrdered
	case ProductStatusOrdered:
		return next == ProductStatusSold || next == ProductStatusAvailable
	default:
		return false
	}
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	Description   string             `bson:"description" json:"description"`
	ProductImages []string           `bson:"productImages" json:"productImages"`
	Category      primitive.ObjectID `bson:"category" json:"category"`
	Owner         primitive.ObjectID `bson:"owner" json:"owner"`
	Quantity      int64              `bson:"quantity" json:"quantity"`
	ProductStatus ProductStatus      `bson:"productStatus" json:"productStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
