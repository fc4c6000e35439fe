package repository

import (
	"time"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Typed shapes for the read-only aggregation pipelines. Missing documents
// decode into the zero values, matching the empty/zero defaults the read
// views promise.

type BuyerDetails struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	InstaID      string             `bson:"instaID,omitempty" json:"instaID,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}

type ProductOrderView struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	OrderStatus  domain.OrderStatus `bson:"orderStatus" json:"orderStatus"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int64              `bson:"quantity" json:"quantity"`
	OrderDate    time.Time          `bson:"orderDate" json:"orderDate"`
	Buyer        primitive.ObjectID `bson:"buyer" json:"buyer"`
	Product      primitive.ObjectID `bson:"product" json:"product"`
	BuyerDetails BuyerDetails       `bson:"buyerDetails" json:"buyerDetails"`
}

type OrderHistoryView struct {
	BuyerOrders       []domain.Order `bson:"buyerOrders" json:"buyerOrders"`
	SellerOrders      []domain.Order `bson:"sellerOrders" json:"sellerOrders"`
	TotalBuyerOrders  int64          `bson:"totalBuyerOrders" json:"totalBuyerOrders"`
	TotalSellerOrders int64          `bson:"totalSellerOrders" json:"totalSellerOrders"`
}

type ProductHistoryView struct {
	ProductHistory []domain.Product `bson:"productHistory" json:"productHistory"`
	TotalProducts  int64            `bson:"totalProducts" json:"totalProducts"`
}

type DashboardView struct {
	TotalProducts     int64   `bson:"totalProducts" json:"totalProducts"`
	AvailableProducts int64   `bson:"availableProducts" json:"availableProducts"`
	TotalBuyerOrders  int64   `bson:"totalBuyerOrders" json:"totalBuyerOrders"`
	TotalSellerOrders int64   `bson:"totalSellerOrders" json:"totalSellerOrders"`
	TotalRevenue      float64 `bson:"totalRevenue" json:"totalRevenue"`
}

type OrderWithProduct struct {
	domain.Order   `bson:",inline"`
	ProductDetails domain.Product `bson:"productDetails" json:"productDetails"`
}

type ProfileView struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	PhoneNumber    string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	InstaID        string             `bson:"instaID,omitempty" json:"instaID,omitempty"`
	ProfileImage   string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	ProductHistory []domain.Product   `bson:"productHistory" json:"productHistory"`
	OrderHistory   []OrderWithProduct `bson:"orderHistory" json:"orderHistory"`
	DashboardView  `bson:",inline"`
}

type CategoryCountView struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	ProductCount int64              `bson:"productCount" json:"productCount"`
}

type CategoryInfo struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type OwnerInfo struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

type ProductDetailView struct {
	domain.Product  `bson:",inline"`
	CategoryDetails CategoryInfo `bson:"categoryDetails" json:"categoryDetails"`
	OwnerDetails    OwnerInfo    `bson:"ownerDetails" json:"ownerDetails"`
}
