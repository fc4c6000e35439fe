package repository

import (
	"context"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error)
	UpdateProfile(ctx context.Context, data domain.User) (err error)
	UpdateRefreshToken(ctx context.Context, id primitive.ObjectID, refreshToken string) (err error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) (err error)
	GetUserOrderHistory(ctx context.Context, id primitive.ObjectID) (view OrderHistoryView, err error)
	GetUserProductHistory(ctx context.Context, id primitive.ObjectID) (view ProductHistoryView, err error)
	GetUserDashboard(ctx context.Context, id primitive.ObjectID) (view DashboardView, err error)
	GetUserProfile(ctx context.Context, id primitive.ObjectID) (view ProfileView, err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	GetProductDetail(ctx context.Context, id primitive.ObjectID) (view ProductDetailView, err error)
	GetProducts(ctx context.Context) (products []domain.Product, err error)
	GetProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) (products []domain.Product, err error)
	// UpdateProductStatus performs a conditional status swap and fails with
	// ErrConflict when the product is not currently in the from status.
	UpdateProductStatus(ctx context.Context, id primitive.ObjectID, from domain.ProductStatus, to domain.ProductStatus) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (order domain.Order, err error)
	// UpdateOrderStatus performs a conditional status swap and fails with
	// ErrConflict when the order is not currently in the from status.
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from domain.OrderStatus, to domain.OrderStatus) (err error)
	GetProductPendingOrders(ctx context.Context, productID primitive.ObjectID) (orders []ProductOrderView, err error)
	GetProductOrders(ctx context.Context, productID primitive.ObjectID) (orders []ProductOrderView, err error)
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (category domain.Category, err error)
	GetCategoriesWithProductCount(ctx context.Context) (categories []CategoryCountView, err error)
}

type MessageRepository interface {
	AddMessage(ctx context.Context, data domain.Message) (id primitive.ObjectID, err error)
	GetMessageByID(ctx context.Context, id primitive.ObjectID) (message domain.Message, err error)
	GetConversation(ctx context.Context, first primitive.ObjectID, second primitive.ObjectID) (messages []domain.Message, err error)
}

type OTPRepository interface {
	UpsertOTP(ctx context.Context, data domain.OTP) (err error)
	GetOTPByEmail(ctx context.Context, email string) (otp domain.OTP, err error)
	DeleteOTPByEmail(ctx context.Context, email string) (err error)
}
